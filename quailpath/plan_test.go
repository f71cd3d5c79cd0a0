package quailpath_test

import (
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/occgrid"
	"github.com/theta-robotics/quailpath/planconfig"
	"github.com/theta-robotics/quailpath/quailpath"
)

func TestPlan_EmptyGrid(t *testing.T) {
	g, err := occgrid.NewDense(10, 10, func(x, y int) bool { return false })
	require.NoError(t, err)

	cfg, err := planconfig.Default()
	require.NoError(t, err)

	result, err := quailpath.Plan(g, geom.Cell{X: 0, Y: 0}, geom.Cell{X: 9, Y: 9}, cfg, clock.NewMock(), 1)
	require.NoError(t, err)

	assert.Equal(t, []geom.Cell{{X: 0, Y: 0}, {X: 9, Y: 9}}, result.Path)
	assert.NotEmpty(t, result.Samples)
	assert.Greater(t, result.Final.Ticks, 0)
	assert.True(t, result.Summary.Arrived)
}

func TestPlan_NoPathReturnsErrNoPath(t *testing.T) {
	g, err := occgrid.NewDense(10, 10, func(x, y int) bool { return x == 5 })
	require.NoError(t, err)

	cfg, err := planconfig.Default()
	require.NoError(t, err)

	_, err = quailpath.Plan(g, geom.Cell{X: 0, Y: 0}, geom.Cell{X: 9, Y: 9}, cfg, clock.NewMock(), 1)
	assert.ErrorIs(t, err, quailpath.ErrNoPath)
}

func TestPlan_WithoutSpline(t *testing.T) {
	g, err := occgrid.NewDense(10, 10, func(x, y int) bool { return false })
	require.NoError(t, err)

	cfg, err := planconfig.Default()
	require.NoError(t, err)
	cfg.Planner.UseSpline = false

	result, err := quailpath.Plan(g, geom.Cell{X: 0, Y: 0}, geom.Cell{X: 9, Y: 9}, cfg, clock.NewMock(), 1)
	require.NoError(t, err)
	assert.Len(t, result.Samples, len(result.Path))
}
