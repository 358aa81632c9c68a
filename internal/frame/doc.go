// Package frame defines the snapshot types shared by every part of algoviz.
//
// A [Frame] is one immutable snapshot of algorithm state, discriminated by
// [Kind]:
//
//   - array: sorting state (values plus highlight/compare/settled sets)
//   - search: linear scan state (cursor, target, found)
//   - binary_search: bounded search state (low/high/mid window)
//   - graph: traversal state (visited, frontier, current, visit order)
//
// A [Sequence] is the complete ordered output of one producer call. Every
// frame is self-contained: rendering any frame in isolation reproduces the
// full state at that step, with no carry-over from earlier frames.
package frame
