// Package shift computes how many fixed-length shifts fit into an availability
// vector.
//
// A shift occupies ShiftLength consecutive units and consumes one unit of
// availability from each of them. Two solvers share the window locator and
// the reducer: Exhaustive branches over every feasible count at each located
// window and is the reference oracle, Greedy commits to the largest count and
// never branches. LPBound solves the linear relaxation with gonum and serves
// as an independent polynomial-time cross-check.
//
// Both recursive solvers resume the window search one unit after the window
// they just processed, never a full shift later, so overlapping windows that
// start inside a partially consumed window stay reachable.
package shift
