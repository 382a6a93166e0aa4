package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pegs/board"
)

//----------------------------------------------------------------------------//
// Construction and access
//----------------------------------------------------------------------------//

// TestNew_AllBlocked verifies that a fresh board has no shape yet.
func TestNew_AllBlocked(t *testing.T) {
	b := board.New(5, 4)
	assert.Equal(t, 5, b.Width)
	assert.Equal(t, 4, b.Height)
	assert.Equal(t, 20, b.CountState(board.Blocked))
	assert.Zero(t, b.CountState(board.Peg))
	assert.Zero(t, b.CountState(board.Empty))
}

// TestNew_PanicsOnBadDims verifies the positive-dimension contract.
func TestNew_PanicsOnBadDims(t *testing.T) {
	assert.Panics(t, func() { board.New(0, 5) })
	assert.Panics(t, func() { board.New(5, -1) })
}

// TestAtSet roundtrips a write through the bounds-checked accessors.
func TestAtSet(t *testing.T) {
	b := board.New(4, 4)
	b.Set(2, 3, board.Peg)
	assert.Equal(t, board.Peg, b.At(2, 3))
	assert.Equal(t, board.Blocked, b.At(0, 0))

	assert.Panics(t, func() { b.At(4, 0) })
	assert.Panics(t, func() { b.At(0, -1) })
	assert.Panics(t, func() { b.Set(-1, 0, board.Peg) })
}

// TestInBounds checks boundary coordinates on a 3×2 board.
func TestInBounds(t *testing.T) {
	b := board.New(3, 2)
	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, b.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, b.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

// TestCoordinate verifies the row-major index inverse.
func TestCoordinate(t *testing.T) {
	b := board.New(5, 3)
	x, y := b.Coordinate(7)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

// TestClone_Independent verifies that a clone shares no storage.
func TestClone_Independent(t *testing.T) {
	b := board.New(4, 4)
	b.Set(1, 1, board.Peg)

	c := b.Clone()
	c.Set(1, 1, board.Empty)

	assert.Equal(t, board.Peg, b.At(1, 1))
	assert.Equal(t, board.Empty, c.At(1, 1))
}

//----------------------------------------------------------------------------//
// Extent and rendering
//----------------------------------------------------------------------------//

// TestTouchesEdges covers boards that do and do not reach every edge.
func TestTouchesEdges(t *testing.T) {
	full := board.New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			full.Set(x, y, board.Peg)
		}
	}
	assert.True(t, full.TouchesEdges())

	// A cross of pegs through the centre touches all four edges.
	cross := board.New(5, 5)
	for i := 0; i < 5; i++ {
		cross.Set(i, 2, board.Peg)
		cross.Set(2, i, board.Peg)
	}
	assert.True(t, cross.TouchesEdges())

	// Shrink the cross off the right column.
	cross.Set(4, 2, board.Blocked)
	assert.False(t, cross.TouchesEdges())

	assert.False(t, board.New(4, 4).TouchesEdges())
}

// TestText pins the '*'/'-'/' ' rendering.
func TestText(t *testing.T) {
	b := board.New(3, 2)
	b.Set(0, 0, board.Peg)
	b.Set(1, 0, board.Empty)
	b.Set(2, 1, board.Peg)

	require.Equal(t, "*- \n  *\n", b.Text())
}
