package losight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/losight"
	"github.com/theta-robotics/quailpath/occgrid"
)

func TestVisible_ReflexiveAndSelf(t *testing.T) {
	g, err := occgrid.NewDense(5, 5, func(x, y int) bool { return false })
	require.NoError(t, err)

	a := geom.Cell{X: 2, Y: 2}
	assert.True(t, losight.Visible(g, a, a))
}

func TestVisible_OutOfBounds(t *testing.T) {
	g, err := occgrid.NewDense(5, 5, func(x, y int) bool { return false })
	require.NoError(t, err)

	assert.False(t, losight.Visible(g, geom.Cell{X: -1, Y: 0}, geom.Cell{X: 2, Y: 2}))
	assert.False(t, losight.Visible(g, geom.Cell{X: 0, Y: 0}, geom.Cell{X: 9, Y: 9}))
}

func TestVisible_Symmetry(t *testing.T) {
	blocked := map[geom.Cell]bool{{X: 3, Y: 2}: true, {X: 2, Y: 3}: true}
	g, err := occgrid.NewDense(10, 10, func(x, y int) bool { return blocked[geom.Cell{X: x, Y: y}] })
	require.NoError(t, err)

	a := geom.Cell{X: 0, Y: 0}
	b := geom.Cell{X: 9, Y: 9}

	assert.Equal(t, losight.Visible(g, a, b), losight.Visible(g, b, a))
}

func TestVisible_BlockedByWall(t *testing.T) {
	g, err := occgrid.NewDense(10, 10, func(x, y int) bool { return x == 5 && y != 5 })
	require.NoError(t, err)

	assert.False(t, losight.Visible(g, geom.Cell{X: 0, Y: 0}, geom.Cell{X: 9, Y: 9}))
	assert.True(t, losight.Visible(g, geom.Cell{X: 0, Y: 5}, geom.Cell{X: 9, Y: 5}))
}

func TestVisible_DiagonalCannotSlipBetweenBlockedCorners(t *testing.T) {
	blocked := map[geom.Cell]bool{{X: 1, Y: 0}: true, {X: 0, Y: 1}: true}
	g, err := occgrid.NewDense(5, 5, func(x, y int) bool { return blocked[geom.Cell{X: x, Y: y}] })
	require.NoError(t, err)

	assert.False(t, losight.Visible(g, geom.Cell{X: 0, Y: 0}, geom.Cell{X: 1, Y: 1}))
}
