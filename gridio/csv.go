package gridio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/theta-robotics/quailpath/occgrid"
)

// denseRow holds one grid row as a single quoted CSV column of
// comma-separated 0/1 values, e.g. "0,0,1,0". Packing the row into one
// column rather than one per cell lets gocsv read grids of any width
// without a struct tag per column.
type denseRow struct {
	Cells string `csv:"cells"`
}

// LoadCSV reads a dense occupancy grid from r: one header line "cells",
// then one line per row, each a quoted comma-separated list of 0/1 values.
// All rows must have the same width.
func LoadCSV(r io.Reader) (occgrid.Grid, error) {
	var rows []denseRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("gridio: reading dense csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, occgrid.ErrEmptyGrid
	}

	cells := make([][]int, len(rows))
	for y, row := range rows {
		fields := strings.Split(row.Cells, ",")
		vals := make([]int, len(fields))
		for x, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("gridio: parsing cell (%d,%d): %w", x, y, err)
			}
			vals[x] = v
		}
		cells[y] = vals
	}

	return occgrid.NewDenseFromRows(cells)
}

// packedRow holds one column's bitmask of a packed occupancy grid: bit y of
// Bits is set when row y of column Column is blocked.
type packedRow struct {
	Column int    `csv:"column"`
	Bits   uint64 `csv:"bits"`
}

// LoadPacked reads a bit-packed occupancy grid from r: a header line
// "column,bits" followed by one line per column in ascending column order.
// height must be supplied by the caller since the packed form does not
// self-describe row count; it must not exceed 64 (occgrid.Packed's limit).
func LoadPacked(r io.Reader, height int) (occgrid.Grid, error) {
	var rows []packedRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("gridio: reading packed csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, occgrid.ErrEmptyGrid
	}

	width := len(rows)
	blocked := func(x, y int) bool {
		return rows[x].Bits&(1<<uint(y)) != 0
	}

	return occgrid.NewPacked(width, height, blocked)
}
