package occgrid

import "fmt"

// maxPackedHeight is the number of rows a single uint64 column can encode.
const maxPackedHeight = 64

// ErrHeightTooLarge indicates a Packed grid was asked to hold more rows than
// a single uint64 column bitmask can represent.
var ErrHeightTooLarge = fmt.Errorf("occgrid: packed grid height must be <= %d", maxPackedHeight)

// Packed is a bit-packed occupancy grid: one uint64 per column, with bit y
// set when cell (x, y) is blocked, trading a height cap of 64 rows for O(1)
// column-word blocked checks and a small memory footprint.
type Packed struct {
	width, height int
	columns       []uint64
}

// NewPacked builds a Packed grid of the given dimensions. height must not
// exceed 64.
func NewPacked(width, height int, blocked func(x, y int) bool) (*Packed, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if height > maxPackedHeight {
		return nil, ErrHeightTooLarge
	}

	columns := make([]uint64, width)
	for x := 0; x < width; x++ {
		var col uint64
		for y := 0; y < height; y++ {
			if blocked(x, y) {
				col |= 1 << uint(y)
			}
		}
		columns[x] = col
	}

	return &Packed{width: width, height: height, columns: columns}, nil
}

// Width returns the number of columns.
func (p *Packed) Width() int { return p.width }

// Height returns the number of rows.
func (p *Packed) Height() int { return p.height }

// InBounds reports whether (x, y) lies within the grid boundaries.
func (p *Packed) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// Blocked reports whether the cell at (x, y) is occupied. Out-of-bounds
// cells are always blocked.
func (p *Packed) Blocked(x, y int) bool {
	if !p.InBounds(x, y) {
		return true
	}
	return p.columns[x]&(1<<uint(y)) != 0
}

var _ Grid = (*Packed)(nil)
