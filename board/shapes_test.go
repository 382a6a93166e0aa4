package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pegs/board"
)

// TestNewShape_Cross pins the classic 7×7 cross: 32 pegs around a
// single centre hole, 16 blocked corner cells.
func TestNewShape_Cross(t *testing.T) {
	b, err := board.NewShape(board.Params{Width: 7, Height: 7, Shape: board.Cross})
	require.NoError(t, err)

	assert.Equal(t, board.Empty, b.At(3, 3))
	assert.Equal(t, 32, b.CountState(board.Peg))
	assert.Equal(t, 1, b.CountState(board.Empty))
	assert.Equal(t, 16, b.CountState(board.Blocked))
	assert.True(t, b.TouchesEdges())

	// Corner 2×2 blocks are outside the cross.
	assert.Equal(t, board.Blocked, b.At(0, 0))
	assert.Equal(t, board.Blocked, b.At(6, 6))
	assert.Equal(t, board.Peg, b.At(3, 0))
	assert.Equal(t, board.Peg, b.At(0, 3))
}

// TestNewShape_Octagon pins the 7×7 octagon: 36 pegs, centre hole, 12
// blocked cells cut off the corners.
func TestNewShape_Octagon(t *testing.T) {
	b, err := board.NewShape(board.Params{Width: 7, Height: 7, Shape: board.Octagon})
	require.NoError(t, err)

	assert.Equal(t, board.Empty, b.At(3, 3))
	assert.Equal(t, 36, b.CountState(board.Peg))
	assert.Equal(t, 1, b.CountState(board.Empty))
	assert.Equal(t, 12, b.CountState(board.Blocked))
	assert.True(t, b.TouchesEdges())

	assert.Equal(t, board.Blocked, b.At(0, 0))
	assert.Equal(t, board.Peg, b.At(1, 1))
}

// TestNewShape_Rejections covers the unsupported requests.
func TestNewShape_Rejections(t *testing.T) {
	_, err := board.NewShape(board.Params{Width: 7, Height: 7, Shape: board.Random})
	assert.ErrorIs(t, err, board.ErrShapeRandom)

	_, err = board.NewShape(board.Params{Width: 9, Height: 9, Shape: board.Cross})
	assert.ErrorIs(t, err, board.ErrShapeSize)

	_, err = board.NewShape(board.Params{Width: 3, Height: 7, Shape: board.Octagon})
	assert.ErrorIs(t, err, board.ErrParamsSize)
}
