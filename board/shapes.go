package board

// NewShape builds a preset board from closed-form coordinate
// predicates: the Cross keeps every cell within one step of the two
// centre lines, the Octagon every cell within taxicab radius
// 1+max(W,H)/2 of the centre. The centre cell starts as the single
// hole. Random boards are not built here — use the generator package —
// so a Random shape yields ErrShapeRandom.
//
// Complexity: O(W×H).
func NewShape(p Params) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Shape == Random {
		return nil, ErrShapeRandom
	}

	w, h := p.Width, p.Height
	b := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cx, cy := abs(x-w/2), abs(y-h/2)
			var v CellState
			switch {
			case cx == 0 && cy == 0:
				v = Empty
			case p.Shape == Cross && cx > 1 && cy > 1:
				v = Blocked
			case p.Shape == Octagon && cx+cy > 1+max(w, h)/2:
				v = Blocked
			default:
				v = Peg
			}
			b.Set(x, y, v)
		}
	}

	return b, nil
}
