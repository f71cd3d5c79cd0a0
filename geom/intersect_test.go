package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theta-robotics/quailpath/geom"
)

func TestCircleSegmentIntersect(t *testing.T) {
	center := geom.Point{X: 1, Y: 0}

	// Segment passes straight through the circle.
	assert.True(t, geom.CircleSegmentIntersect(center, 2, geom.Point{X: -3, Y: 0}, geom.Point{X: 5, Y: 0}))

	// Segment well clear of the circle.
	assert.False(t, geom.CircleSegmentIntersect(center, 0.5, geom.Point{X: -3, Y: 10}, geom.Point{X: 5, Y: 10}))

	// Degenerate zero-length segment never intersects (a == 0).
	assert.False(t, geom.CircleSegmentIntersect(center, 2, geom.Point{X: 1, Y: 0}, geom.Point{X: 1, Y: 0}))

	// Teleport-through case: robot jumps from one side of the waypoint to the
	// other in a single tick, as in spec scenario 6.
	wp := geom.Point{X: 1, Y: 0}
	assert.True(t, geom.CircleSegmentIntersect(wp, 2, geom.Point{X: -3, Y: 0}, geom.Point{X: 5, Y: 0}))
}
