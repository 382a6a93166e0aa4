// Package board models a rectangular Peg Solitaire board of tri-state
// cells and the small codecs around it.
//
// What:
//
//   - Board wraps a dense W×H grid of CellState values (Peg, Empty, Blocked)
//     with bounds-checked access and cheap cloning.
//   - Description codec: per-cell 'P'/'H'/'O' strings for persistence and
//     transmission, with validation.
//   - Params codec: textual "WxHshape" parameters, validation, and the
//     classic preset list.
//   - Preset shapes: closed-form Cross and Octagon boards at 7×7.
//   - Forward play: Jump legality and application as a pure function.
//
// Why:
//
//   - Live games: apply and validate player jumps without mutating state.
//   - Persistence: round-trip boards and parameters through short strings.
//   - Generation: the generator package builds its boards on these
//     primitives and hands back immutable results.
//
// Complexity:
//
//   - At/Set/InBounds: O(1).
//   - Clone/Encode/Decode/Text/CountState/TouchesEdges: O(W×H).
//   - ApplyJump: O(W×H) (dominated by the clone).
//
// Errors:
//
//   - ErrDescLength, ErrDescChar: malformed board descriptions.
//   - ErrBadParams, ErrParamsSize, ErrShapeSize: malformed or unsupported
//     parameters.
//   - ErrShapeRandom: Random boards come from the generator, not NewShape.
//   - ErrJumpRange, ErrJumpLength, ErrJumpCells: illegal forward jumps.
//
// Out-of-range coordinates passed to At/Set, and non-positive dimensions
// passed to New, are programmer errors and panic.
package board
