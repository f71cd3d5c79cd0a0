package occgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theta-robotics/quailpath/occgrid"
)

func TestDense_OutOfBoundsAlwaysBlocked(t *testing.T) {
	g, err := occgrid.NewDense(3, 3, func(x, y int) bool { return false })
	require.NoError(t, err)

	assert.False(t, g.Blocked(0, 0))
	assert.True(t, g.Blocked(-1, 0))
	assert.True(t, g.Blocked(0, -1))
	assert.True(t, g.Blocked(3, 0))
	assert.True(t, g.Blocked(0, 3))
}

func TestDense_FromRows(t *testing.T) {
	rows := [][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	g, err := occgrid.NewDenseFromRows(rows)
	require.NoError(t, err)

	assert.True(t, g.Blocked(1, 0))
	assert.False(t, g.Blocked(0, 0))
}

func TestDense_NonRectangular(t *testing.T) {
	_, err := occgrid.NewDenseFromRows([][]int{{0, 1}, {0}})
	assert.ErrorIs(t, err, occgrid.ErrNonRectangular)
}

func TestDense_Empty(t *testing.T) {
	_, err := occgrid.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, occgrid.ErrEmptyGrid)
}

func TestPacked_MatchesDense(t *testing.T) {
	blocked := func(x, y int) bool { return (x+y)%3 == 0 }

	dense, err := occgrid.NewDense(10, 10, blocked)
	require.NoError(t, err)
	packed, err := occgrid.NewPacked(10, 10, blocked)
	require.NoError(t, err)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, dense.Blocked(x, y), packed.Blocked(x, y), "mismatch at (%d,%d)", x, y)
		}
	}
}

func TestPacked_HeightCap(t *testing.T) {
	_, err := occgrid.NewPacked(1, 65, func(x, y int) bool { return false })
	assert.ErrorIs(t, err, occgrid.ErrHeightTooLarge)
}
