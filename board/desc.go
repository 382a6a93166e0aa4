package board

import "strings"

// Description characters, one per cell in row-major order.
const (
	descPeg     = 'P'
	descHole    = 'H'
	descBlocked = 'O'
)

// Encode serializes the board to its game description: one character
// per cell in row-major order, 'P' for peg, 'H' for hole, 'O' for a
// blocked cell.
// Complexity: O(W×H).
func (b *Board) Encode() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))
	for _, c := range b.cells {
		switch c {
		case Peg:
			sb.WriteByte(descPeg)
		case Empty:
			sb.WriteByte(descHole)
		default:
			sb.WriteByte(descBlocked)
		}
	}

	return sb.String()
}

// ValidateDesc checks that desc is a well-formed w×h game description.
// Returns ErrDescLength or ErrDescChar on failure.
// Complexity: O(W×H).
func ValidateDesc(w, h int, desc string) error {
	if len(desc) != w*h {
		return ErrDescLength
	}
	for i := 0; i < len(desc); i++ {
		switch desc[i] {
		case descPeg, descHole, descBlocked:
		default:
			return ErrDescChar
		}
	}

	return nil
}

// Decode builds a Board from a w×h game description previously produced
// by Encode. Returns ErrDescLength or ErrDescChar on malformed input.
// Complexity: O(W×H).
func Decode(w, h int, desc string) (*Board, error) {
	if err := ValidateDesc(w, h, desc); err != nil {
		return nil, err
	}
	b := New(w, h)
	for i := 0; i < len(desc); i++ {
		switch desc[i] {
		case descPeg:
			b.cells[i] = Peg
		case descHole:
			b.cells[i] = Empty
		default:
			b.cells[i] = Blocked
		}
	}

	return b, nil
}
