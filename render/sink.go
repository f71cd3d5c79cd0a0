package render

import (
	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/occgrid"
)

// Sink receives drawing commands for one frame of a plan-and-follow run. A
// Sink implementation owns its own coordinate mapping and flush timing;
// callers issue draws in any order within a frame and then flush it.
type Sink interface {
	// DrawGrid renders the occupancy grid's blocked/free cells.
	DrawGrid(g occgrid.Grid)
	// DrawPath renders the planned polyline, in order.
	DrawPath(path []geom.Cell)
	// DrawPose renders the follower's current pose.
	DrawPose(p geom.Pose)
	// Flush presents the accumulated draws for one frame.
	Flush()
}
