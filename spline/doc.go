// Package spline resamples a polyline into a natural cubic spline,
// parameterized by cumulative chord length, and evaluated at N equally
// spaced parameter values. It smooths the planner's corner-cut polyline
// into the waypoint stream package follower consumes.
//
// Algorithm:
//
//  1. Compute cumulative chord-length distances d[0]=0, d[i]=d[i-1]+|p_i-p_i-1|.
//  2. Build the tridiagonal system for a natural cubic interpolant of
//     xs(d) and ys(d) separately, solved via the Thomas algorithm.
//  3. Derive Hermite control coefficients a_i, b_i per segment from the
//     solved knot slopes.
//  4. Sample at m equally spaced parameter values and evaluate the Hermite
//     form on the enclosing segment.
//
// Complexity: O(n) to build the tridiagonal solve, O(n + m) to sample.
//
// Errors:
//
//   - ErrLengthMismatch: xs and ys have different lengths.
//   - ErrTooFewPoints: fewer than two input points.
//   - ErrTooFewSamples: fewer than two requested output samples.
package spline
