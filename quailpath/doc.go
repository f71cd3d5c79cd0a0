// Package quailpath is the orchestration facade: plan a path over an
// occupancy grid with thetastar, optionally smooth it with spline, build a
// waypoint queue, and drive follower to completion.
//
// This is the single entry point cmd/quailplan and cmd/quailviz use; core
// packages (geom, raster, occgrid, losight, spline, thetastar, follower)
// have no dependency on this package or on each other's optional siblings.
package quailpath
