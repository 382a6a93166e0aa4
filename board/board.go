package board

import (
	"fmt"
	"strings"
)

// New constructs a w×h Board with every cell Blocked: a new board has
// no shape yet. Panics if either dimension is not positive; dimension
// validation is the caller's job (see Params.Validate).
// Complexity: O(W×H).
func New(w, h int) *Board {
	if w < 1 || h < 1 {
		panic(fmt.Sprintf("board: dimensions must be positive, got %dx%d", w, h))
	}
	cells := make([]CellState, w*h)
	for i := range cells {
		cells[i] = Blocked
	}

	return &Board{Width: w, Height: h, cells: cells}
}

// InBounds reports whether (x,y) lies within the board boundaries.
// Complexity: O(1).
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the state of cell (x,y). Panics on out-of-range
// coordinates: every coordinate reaching a Board must already be
// bounds-checked, so a violation is a programmer error.
// Complexity: O(1).
func (b *Board) At(x, y int) CellState {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("board: At(%d,%d) out of range on %dx%d board", x, y, b.Width, b.Height))
	}

	return b.cells[b.index(x, y)]
}

// Set writes the state of cell (x,y). Panics on out-of-range
// coordinates, same contract as At.
// Complexity: O(1).
func (b *Board) Set(x, y int, s CellState) {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("board: Set(%d,%d) out of range on %dx%d board", x, y, b.Width, b.Height))
	}
	b.cells[b.index(x, y)] = s
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(W×H).
func (b *Board) Clone() *Board {
	cells := make([]CellState, len(b.cells))
	copy(cells, b.cells)

	return &Board{Width: b.Width, Height: b.Height, cells: cells}
}

// CountState returns how many cells currently hold state s.
// Complexity: O(W×H).
func (b *Board) CountState(s CellState) int {
	n := 0
	for _, c := range b.cells {
		if c == s {
			n++
		}
	}

	return n
}

// TouchesEdges reports whether each of the four board edges (left and
// right columns, top and bottom rows) contains at least one non-Blocked
// cell — the extent property required of generated boards.
// Complexity: O(W+H).
func (b *Board) TouchesEdges() bool {
	const left, right, top, bottom = 1, 2, 4, 8
	extremes := 0
	for y := 0; y < b.Height; y++ {
		if b.At(0, y) != Blocked {
			extremes |= left
		}
		if b.At(b.Width-1, y) != Blocked {
			extremes |= right
		}
	}
	for x := 0; x < b.Width; x++ {
		if b.At(x, 0) != Blocked {
			extremes |= top
		}
		if b.At(x, b.Height-1) != Blocked {
			extremes |= bottom
		}
	}

	return extremes == left|right|top|bottom
}

// Text renders the board as rows of '*' (peg), '-' (hole) and ' '
// (blocked), each terminated by a newline.
// Complexity: O(W×H).
func (b *Board) Text() string {
	var sb strings.Builder
	sb.Grow((b.Width + 1) * b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			switch b.At(x, y) {
			case Peg:
				sb.WriteByte('*')
			case Empty:
				sb.WriteByte('-')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (b *Board) index(x, y int) int {
	return y*b.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (b *Board) Coordinate(idx int) (x, y int) {
	return idx % b.Width, idx / b.Width
}
