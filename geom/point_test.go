package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theta-robotics/quailpath/geom"
)

func TestPoint_Distance(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 4}
	assert.InDelta(t, 5.0, a.Distance(b), 1e-9)
	assert.InDelta(t, 0.0, a.Distance(a), 1e-9)
}

func TestCell_RoundTrip(t *testing.T) {
	c := geom.Cell{X: 5, Y: -2}
	p := c.ToPoint()
	assert.Equal(t, geom.Cell{X: 5, Y: -2}, geom.CellOf(p))
}
