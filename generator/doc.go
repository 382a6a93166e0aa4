// Package generator produces random Peg Solitaire boards that are
// guaranteed solvable by construction.
//
// What:
//
//   - Generate / GenerateTrace run a randomized reverse search: starting
//     from a single peg on an all-blocked board, they repeatedly pick a
//     uniformly random minimal-cost reverse jump and apply it, annexing
//     blocked cells into the shape as needed, until no jump remains.
//   - A live move catalog holds every currently legal reverse jump in two
//     counted 2-3-4 trees: one ordered by move identity for exact lookup
//     and removal, one by (cost, identity) for O(log n) rank-based random
//     selection within a cost tier.
//   - After each applied jump only the three touched cells are
//     re-evaluated, so catalog maintenance is O(log n) per move rather
//     than a full-grid rescan.
//   - Finished boards that fail to reach all four edges of the requested
//     rectangle are discarded wholesale and generation restarts.
//
// Why:
//
//   - Solubility for free: the finished board replays the recorded jump
//     sequence in reverse to end at exactly one peg, so every board the
//     package returns has a solution — no post-hoc solver needed.
//   - Arbitrary sizes: unlike the fixed Cross and Octagon shapes, any
//     rectangle above 4×4 works.
//
// Complexity:
//
//   - One generation attempt: O(W×H × log(W×H)) expected.
//   - Catalog update per touched cell: at most 12 candidate moves, each
//     reconciled in O(log n).
//
// Determinism:
//
//   - All randomness flows through the injected Rand; a deterministic
//     source yields a bit-identical board.
//
// Generate panics on dimensions of 3 or less or a nil Rand — dimension
// validation belongs upstream (board.Params.Validate).
package generator
