package board_test

import (
	"fmt"

	"github.com/katalvlaran/pegs/board"
)

// ExampleNewShape builds the classic cross and prints its compact
// description: 'P' peg, 'H' hole, 'O' outside the shape.
func ExampleNewShape() {
	b, _ := board.NewShape(board.DefaultParams())
	fmt.Println(b.Encode())
	// Output:
	// OOPPPOOOOPPPOOPPPPPPPPPPHPPPPPPPPPPOOPPPOOOOPPPOO
}

// ExampleBoard_ApplyJump plays one jump and shows that the original
// board is untouched.
func ExampleBoard_ApplyJump() {
	b := board.New(4, 4)
	b.Set(0, 0, board.Peg)
	b.Set(0, 1, board.Peg)
	b.Set(0, 2, board.Empty)

	next, err := b.ApplyJump(board.Jump{SX: 0, SY: 0, TX: 0, TY: 2})
	fmt.Println(err, next.At(0, 2), b.At(0, 2))
	// Output:
	// <nil> peg hole
}
