package board

// ApplyJump validates the forward-play jump j against the receiver and,
// if legal, returns a new Board with the jump applied: source and the
// cell between source and target become holes, the target gains the peg.
// The receiver is never mutated.
//
// A jump is legal when:
//  1. both endpoints are in bounds (ErrJumpRange otherwise);
//  2. the endpoints are exactly two cells apart along one axis
//     (ErrJumpLength otherwise);
//  3. source and midpoint hold pegs and the target is a hole
//     (ErrJumpCells otherwise).
//
// Complexity: O(W×H), dominated by the clone of the receiver.
func (b *Board) ApplyJump(j Jump) (*Board, error) {
	if !b.InBounds(j.SX, j.SY) || !b.InBounds(j.TX, j.TY) {
		return nil, ErrJumpRange
	}

	dx, dy := j.TX-j.SX, j.TY-j.SY
	if maxAbs(dx, dy) != 2 || minAbs(dx, dy) != 0 {
		return nil, ErrJumpLength
	}
	mx, my := j.SX+dx/2, j.SY+dy/2

	if b.At(j.SX, j.SY) != Peg || b.At(mx, my) != Peg || b.At(j.TX, j.TY) != Empty {
		return nil, ErrJumpCells
	}

	next := b.Clone()
	next.Set(j.SX, j.SY, Empty)
	next.Set(mx, my, Empty)
	next.Set(j.TX, j.TY, Peg)

	return next, nil
}

func maxAbs(a, b int) int {
	return max(abs(a), abs(b))
}

func minAbs(a, b int) int {
	return min(abs(a), abs(b))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
