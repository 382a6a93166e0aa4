package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pegs/board"
)

// Generate produces a random w×h board guaranteed solvable down to a
// single peg. It retries with a fresh board and catalog until the
// result touches all four edges of the requested rectangle; no retry
// bound is imposed (expected attempts are small in practice).
//
// All randomness flows through r, so a deterministic source yields a
// bit-identical board. Panics if w ≤ 3, h ≤ 3 or r is nil; dimension
// validation belongs to the caller (board.Params.Validate).
//
// Complexity: O(W×H × log(W×H)) expected per attempt.
func Generate(w, h int, r Rand, opts ...Option) *board.Board {
	b, _ := GenerateTrace(w, h, r, opts...)

	return b
}

// GenerateTrace is Generate, additionally returning the sequence of
// reverse moves applied to build the board, in application order.
// Replaying the trace backwards as forward jumps (Move.Jump) solves the
// board, ending at exactly one peg on the centre cell.
func GenerateTrace(w, h int, r Rand, opts ...Option) (*board.Board, []Move) {
	if w <= 3 || h <= 3 {
		panic(fmt.Sprintf("generator: width and height must both be greater than three, got %dx%d", w, h))
	}
	if r == nil {
		panic("generator: nil random source")
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cutoff := o.CostCapCutoff
	if cutoff < 0 {
		cutoff = w * h / 2
	}

	for attempt := 1; ; attempt++ {
		b := board.New(w, h)
		b.Set(w/2, h/2, board.Peg)

		trace := genMoves(b, r, cutoff, o.Logger)

		if b.TouchesEdges() {
			return b, trace
		}
		// The shape missed an edge; discard board, catalog and trace
		// wholesale and start over.
		o.Logger.WithField("attempt", attempt).Debug("insufficient extent; retrying")
	}
}

// genMoves runs one generation attempt: it seeds the move catalog from
// the board's pegs, then repeatedly applies a uniformly random
// minimal-cost reverse move and reconciles the catalog, until no move
// within the current cost cap remains. It returns the applied moves in
// order; b is mutated in place.
func genMoves(b *board.Board, r Rand, cutoff int, log *logrus.Logger) []Move {
	c := newCatalog(b.Height, log)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) == board.Peg {
				c.update(b, x, y)
			}
		}
	}

	var trace []Move
	for {
		// Prefer moves that reuse existing space: try cost 0 first, then
		// 1, then 2. Once at least half the board is filled, stop paying
		// the 2-cost annexation price altogether.
		maxCost := 2
		if len(trace) >= cutoff {
			maxCost = 1
		}

		count := 0
		for cost := 0; cost <= maxCost; cost++ {
			if count = c.countAtMost(cost); count > 0 {
				break
			}
		}
		if count == 0 {
			break
		}

		// Every counted move shares the first nonempty cost tier, so the
		// rank draw is uniform over the minimal-cost legal moves.
		m := *c.at(r.IntN(count))
		c.logMove("selecting move", m)

		b.Set(m.X, m.Y, board.Empty)
		b.Set(m.X+m.DX, m.Y+m.DY, board.Peg)
		b.Set(m.X+2*m.DX, m.Y+2*m.DY, board.Peg)

		for i := 0; i <= 2; i++ {
			c.update(b, m.X+i*m.DX, m.Y+i*m.DY)
		}

		trace = append(trace, m)
	}

	return trace
}
