// Package board defines core types and sentinel errors for the board
// subpackage of github.com/katalvlaran/pegs.
package board

import (
	"errors"
)

// Sentinel errors for board operations.
var (
	// ErrDescLength indicates a board description of the wrong length.
	ErrDescLength = errors.New("board: game description is wrong length")
	// ErrDescChar indicates a character outside 'P', 'H', 'O' in a description.
	ErrDescChar = errors.New("board: invalid character in game description")
	// ErrBadParams indicates a parameters string that cannot be parsed.
	ErrBadParams = errors.New("board: malformed parameters string")
	// ErrParamsSize indicates a dimension of 3 or less.
	ErrParamsSize = errors.New("board: width and height must both be greater than three")
	// ErrShapeSize indicates a preset shape requested at an unsupported size.
	ErrShapeSize = errors.New("board: this board shape is only supported at 7x7")
	// ErrShapeRandom indicates NewShape was asked for a Random board.
	ErrShapeRandom = errors.New("board: random boards are produced by the generator")
	// ErrJumpRange indicates a jump endpoint outside the board.
	ErrJumpRange = errors.New("board: jump endpoint out of range")
	// ErrJumpLength indicates a jump not spanning exactly two cells along one axis.
	ErrJumpLength = errors.New("board: jump must span exactly two cells along one axis")
	// ErrJumpCells indicates cell contents that do not permit the jump.
	ErrJumpCells = errors.New("board: cell contents do not permit this jump")
)

// CellState is the state of a single board cell.
type CellState uint8

const (
	// Empty is a playable cell with no piece (a hole).
	Empty CellState = iota
	// Peg is a cell occupied by a playable piece.
	Peg
	// Blocked is a cell outside the puzzle's shape, permanently unplayable.
	Blocked
)

// String returns "hole", "peg" or "blocked".
func (s CellState) String() string {
	switch s {
	case Empty:
		return "hole"
	case Peg:
		return "peg"
	case Blocked:
		return "blocked"
	}

	return "invalid"
}

// Board is a rectangular grid of tri-state cells stored row-major.
// Width and Height define dimensions; cell contents are reached through
// the bounds-checked At and Set accessors.
type Board struct {
	Width, Height int
	cells         []CellState
}

// Jump is a forward-play move: a peg at the source leaps over the cell
// between source and target, landing on the target.
type Jump struct {
	SX, SY int // source cell, must hold a peg
	TX, TY int // target cell, must be a hole
}
