package raster

import "github.com/theta-robotics/quailpath/geom"

// Supercover returns every cell the straight segment a->b passes through,
// including both endpoints and every corner-touch cell. For every
// consecutive pair in the result, the pair is 4-connected, or both of its
// 4-connected bridge cells are also present — so no diagonal step ever
// slips between two cells the result doesn't also touch orthogonally. The
// result of Supercover(a, b) and Supercover(b, a) are reversals of each
// other.
//
// This is a driven-by-the-dominant-axis Bresenham walk that, on each
// minor-axis step, inspects the accumulated error on both sides of the step:
// when the error crosses exactly on a diagonal (pre-error plus post-error
// equals the axis delta), both corner cells are emitted; when it crosses
// asymmetrically, only the cell the segment actually enters is emitted.
func Supercover(a, b geom.Cell) []geom.Cell {
	if dx, dy := b.X-a.X, b.Y-a.Y; abs(dx) == 1 && abs(dy) == 1 {
		// a and b are already diagonal neighbors: the endpoint inset below
		// would collapse dx and dy to zero, skipping the Bresenham loop
		// (and the bridge-cell tie-break it contains) entirely. Emit the
		// two 4-connected bridge cells directly instead of falling through
		// to a bare {a, b}.
		return []geom.Cell{
			{X: a.X, Y: a.Y},
			{X: a.X, Y: b.Y},
			{X: b.X, Y: a.Y},
			{X: b.X, Y: b.Y},
		}
	}

	x1, y1 := a.X, a.Y
	x2, y2 := b.X, b.Y

	// Inset each endpoint by one cell toward the other along the axis it
	// leads on, so the walk below starts/ends exactly on the line the two
	// endpoint cells define. Order matters: the x2/y2 adjustment below uses
	// the already-adjusted x1/y1.
	if x2-x1 < 0 {
		x1--
	}
	if y2-y1 < 0 {
		y1--
	}
	if x2-x1 > 0 {
		x2--
	}
	if y2-y1 > 0 {
		y2--
	}

	dx, dy := x2-x1, y2-y1
	x, y := x1, y1

	pts := []geom.Cell{{X: a.X, Y: a.Y}, {X: x1, Y: y1}}

	ystep := 1
	if dy < 0 {
		ystep = -1
		dy = -dy
	}
	xstep := 1
	if dx < 0 {
		xstep = -1
		dx = -dx
	}

	ddx, ddy := 2*dx, 2*dy

	if ddx >= ddy {
		errorVal, errorPrev := dx, dx
		for i := 0; i < dx; i++ {
			x += xstep
			errorVal += ddy
			if errorVal > ddx {
				y += ystep
				errorVal -= ddx
				switch {
				case errorVal+errorPrev < ddx:
					pts = append(pts, geom.Cell{X: x, Y: y - ystep})
				case errorVal+errorPrev > ddx:
					pts = append(pts, geom.Cell{X: x - xstep, Y: y})
				default:
					pts = append(pts, geom.Cell{X: x, Y: y - ystep})
					pts = append(pts, geom.Cell{X: x - xstep, Y: y})
				}
			}
			pts = append(pts, geom.Cell{X: x, Y: y})
			errorPrev = errorVal
		}
	} else {
		errorVal, errorPrev := dy, dy
		for i := 0; i < dy; i++ {
			y += ystep
			errorVal += ddx
			if errorVal > ddy {
				x += xstep
				errorVal -= ddy
				switch {
				case errorVal+errorPrev < ddy:
					pts = append(pts, geom.Cell{X: x - xstep, Y: y})
				case errorVal+errorPrev > ddy:
					pts = append(pts, geom.Cell{X: x, Y: y - ystep})
				default:
					pts = append(pts, geom.Cell{X: x - xstep, Y: y})
					pts = append(pts, geom.Cell{X: x, Y: y - ystep})
				}
			}
			pts = append(pts, geom.Cell{X: x, Y: y})
			errorPrev = errorVal
		}
	}

	pts = append(pts, geom.Cell{X: b.X, Y: b.Y})

	return pts
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
