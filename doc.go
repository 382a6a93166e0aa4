// Package pegs generates and manipulates Peg Solitaire boards —
// from the fixed classic shapes to random boards of arbitrary size
// that are guaranteed solvable by construction.
//
// 🚀 What is pegs?
//
//	A small, deterministic, in-memory library that brings together:
//		• Board primitives: tri-state cells (peg / hole / blocked), bounds-checked access
//		• Description codec: compact per-cell 'P'/'H'/'O' strings for persistence
//		• Preset shapes: the classic Cross and Octagon at 7×7
//		• Random generation: reverse-move search over a live move catalog,
//		  producing boards that provably reduce to a single peg
//		• Forward play: pure jump legality & application for live games
//
// ✨ Why choose pegs?
//
//   - Guaranteed solubility – random boards are built by reversing jumps
//     from a single peg, so a solution always exists
//   - Deterministic – inject any random source; same source, same board
//   - Pure Go – no cgo, no I/O, no hidden state
//
// Under the hood, everything is organized under two subpackages:
//
//	board/     — Board, CellState, Params, presets, description codec, forward jumps
//	generator/ — move catalog (dual ordered indices), incremental updates, Generate
//
// Quick ASCII example (the 7×7 Cross):
//
//	  ***
//	  ***
//	*******
//	***-***
//	*******
//	  ***
//	  ***
//
// Dive into the board and generator package docs for the full API.
//
//	go get github.com/katalvlaran/pegs
package pegs
