// Package generator defines the tunable options and core types for
// random board generation.
package generator

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pegs/board"
)

// Rand supplies uniformly distributed integers in [0, n) for n > 0.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Move is one reverse jump applied during generation. The anchor (X,Y)
// is the peg being split — hence the jump's landing cell during normal
// play — and (DX,DY) is the unit direction the reverse jump travels:
// applying the move empties the anchor and places pegs on
// (X+DX, Y+DY) and (X+2DX, Y+2DY).
type Move struct {
	X, Y   int
	DX, DY int
	// Cost counts the blocked cells among midpoint and far cell that the
	// move annexes into the board's shape: 0, 1 or 2.
	Cost int
}

// Jump returns the forward-play inverse of the move: a jump from the
// far cell back onto the anchor.
func (m Move) Jump() board.Jump {
	return board.Jump{
		SX: m.X + 2*m.DX, SY: m.Y + 2*m.DY,
		TX: m.X, TY: m.Y,
	}
}

// Option configures generation via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Generate.
type Options struct {
	// Logger receives per-move generation diagnostics at debug level.
	Logger *logrus.Logger

	// CostCapCutoff is the number of applied moves after which cost-2
	// moves are refused, keeping blocked-cell consumption front-loaded.
	// Negative selects the default of half the cell count (W×H/2). The
	// cutoff is a shaping heuristic; solubility never depends on it.
	CostCapCutoff int
}

// DefaultOptions returns Options with a discarding logger and the
// default half-board cost-cap cutoff.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l, CostCapCutoff: -1}
}

// WithLogger directs generation diagnostics to l.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCostCapCutoff overrides the applied-move count after which
// cost-2 moves are refused. Negative restores the default W×H/2.
func WithCostCapCutoff(n int) Option {
	return func(o *Options) {
		o.CostCapCutoff = n
	}
}
