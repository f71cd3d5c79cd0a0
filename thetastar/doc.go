// Package thetastar implements Theta*, an any-angle shortest-path search
// over an 8-connected occupancy grid. Where A* would only ever connect a
// node to its immediate grid neighbor, Theta* first checks whether the
// neighbor has line of sight to the current node's parent and, if so,
// parents it there directly — producing straight-line shortcuts through
// open space instead of a staircase of grid-aligned edges.
//
// State machine per node: UNVISITED -> OPEN -> CLOSED. A node may be
// re-relaxed (its g and parent improved) while OPEN; it never returns from
// CLOSED to OPEN.
//
// The open set is a binary heap keyed by f = g + w*h, with ties broken by
// lower h then insertion order, and a lazy decrease-key discipline: a node
// may be pushed more than once, and stale copies are skipped on pop.
//
// Complexity: O(V log V) in the number of expanded cells, dominated by
// heap operations and per-expansion line-of-sight checks.
//
// Errors:
//
//   - ErrBlockedEndpoint: start or goal cell is blocked and
//     WithForceFreeEndpoints was not supplied.
//
// "No path" is not an error: Search returns (nil, false, nil) when the goal
// is unreachable.
package thetastar
