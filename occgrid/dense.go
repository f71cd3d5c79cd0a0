package occgrid

import "errors"

// ErrEmptyGrid indicates the input grid has no rows or no columns.
var ErrEmptyGrid = errors.New("occgrid: grid must have at least one row and one column")

// ErrNonRectangular indicates the input rows have differing lengths.
var ErrNonRectangular = errors.New("occgrid: all rows must have the same length")

// Dense is a rectangular, row-major occupancy grid backed by a plain
// [][]bool. Cell (x, y) is stored at cells[y][x]: the row-major slice
// layout a Go implementation wants, with the (x, y) accessor convention
// callers expect kept on the outside.
type Dense struct {
	width, height int
	cells         [][]bool // cells[y][x]
}

// NewDense builds a Dense grid of the given dimensions where blocked(x, y)
// reports whether the cell at (x, y) is occupied.
func NewDense(width, height int, blocked func(x, y int) bool) (*Dense, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]bool, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			cells[y][x] = blocked(x, y)
		}
	}

	return &Dense{width: width, height: height, cells: cells}, nil
}

// NewDenseFromRows builds a Dense grid from a rectangular 2D slice where
// rows[y][x] != 0 means blocked. Every row must have the same length.
func NewDenseFromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	height := len(rows)
	cells := make([][]bool, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			cells[y][x] = rows[y][x] != 0
		}
	}

	return &Dense{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (d *Dense) Width() int { return d.width }

// Height returns the number of rows.
func (d *Dense) Height() int { return d.height }

// InBounds reports whether (x, y) lies within the grid boundaries.
func (d *Dense) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < d.width && y < d.height
}

// Blocked reports whether the cell at (x, y) is occupied. Out-of-bounds
// cells are always blocked.
func (d *Dense) Blocked(x, y int) bool {
	if !d.InBounds(x, y) {
		return true
	}
	return d.cells[y][x]
}

var _ Grid = (*Dense)(nil)
