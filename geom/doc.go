// Package geom provides the 2D point/pose algebra shared by the planner,
// spline, and follower packages: Euclidean distance, pose arithmetic, and
// the swept-circle/segment intersection test used by the follower's
// arrival predicate.
package geom
