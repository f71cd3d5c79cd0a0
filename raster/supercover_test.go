package raster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/raster"
)

func asSet(cells []geom.Cell) map[geom.Cell]bool {
	set := make(map[geom.Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

func TestSupercover_Symmetry(t *testing.T) {
	a := geom.Cell{X: 0, Y: 0}
	b := geom.Cell{X: 5, Y: 3}

	forward := raster.Supercover(a, b)
	backward := raster.Supercover(b, a)

	assert.Equal(t, asSet(forward), asSet(backward))
}

func TestSupercover_IncludesEndpoints(t *testing.T) {
	a := geom.Cell{X: 1, Y: 1}
	b := geom.Cell{X: 4, Y: 6}

	cells := raster.Supercover(a, b)
	set := asSet(cells)

	assert.True(t, set[a])
	assert.True(t, set[b])
}

func TestSupercover_CornerTouch(t *testing.T) {
	// A pure diagonal step must also touch both 4-connected bridge cells,
	// so no diagonal can slip between two blocked corner cells.
	a := geom.Cell{X: 0, Y: 0}
	b := geom.Cell{X: 1, Y: 1}

	set := asSet(raster.Supercover(a, b))
	assert.True(t, set[geom.Cell{X: 0, Y: 0}])
	assert.True(t, set[geom.Cell{X: 1, Y: 1}])
	assert.True(t, set[geom.Cell{X: 0, Y: 1}], "expected bridge cell (0,1)")
	assert.True(t, set[geom.Cell{X: 1, Y: 0}], "expected bridge cell (1,0)")
}

func TestSupercover_CornerTouch_AntiDiagonal(t *testing.T) {
	a := geom.Cell{X: 5, Y: 5}
	b := geom.Cell{X: 4, Y: 6}

	set := asSet(raster.Supercover(a, b))
	assert.True(t, set[a])
	assert.True(t, set[b])
	assert.True(t, set[geom.Cell{X: 5, Y: 6}], "expected bridge cell (5,6)")
	assert.True(t, set[geom.Cell{X: 4, Y: 5}], "expected bridge cell (4,5)")
}

func TestSupercover_AxisAligned(t *testing.T) {
	a := geom.Cell{X: 0, Y: 0}
	b := geom.Cell{X: 4, Y: 0}

	set := asSet(raster.Supercover(a, b))
	for x := 0; x <= 4; x++ {
		assert.True(t, set[geom.Cell{X: x, Y: 0}], "expected cell (%d,0)", x)
	}
}
