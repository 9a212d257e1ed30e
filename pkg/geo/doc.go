// Package geo provides the immutable geometry value types used by the
// routing engine: points, sizes, rectangles, lines, sides, and cardinal
// directions, together with their derived measurements.
//
// All operations are pure, total functions over value types. There are no
// error conditions and no state. Coordinates are integers; only distances
// are real-valued. The Y axis grows downward.
//
// Two conventions matter for routing correctness:
//
//   - [Rect.Contains] is inclusive on all four edges.
//   - [Rect.Intersects] uses open-interval overlap: rectangles that only
//     touch along an edge do not intersect. This governs whether a grid
//     cell or path segment counts as blocked by an obstacle.
package geo
