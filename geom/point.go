package geom

import "gonum.org/v1/gonum/floats"

// Point is a real-valued 2D coordinate. Equality is exact component equality.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return floats.Distance([]float64{p.X, p.Y}, []float64{other.X, other.Y}, 2)
}

// Cell is the integer-coordinate form of a Point, used by the grid and
// planner packages where identity is cell coordinates.
type Cell struct {
	X, Y int
}

// ToPoint converts a Cell to a Point at its integer coordinates.
func (c Cell) ToPoint() Point {
	return Point{X: float64(c.X), Y: float64(c.Y)}
}

// CellOf truncates a Point to its containing Cell.
func CellOf(p Point) Cell {
	return Cell{X: int(p.X), Y: int(p.Y)}
}
