package geom

import "math"

// CircleSegmentIntersect reports whether the circle of the given radius
// centered at center intersects the segment p1->p2.
//
// Solves at^2 + bt + c = 0 for the parameter t along the segment, where
// d = p2-p1, f = p1-center, a = |d|^2, b = 2(f.d), c = |f|^2 - radius^2.
// Intersects iff a > 0, the discriminant is non-negative, and at least one
// root lies in [0, 1].
//
// Reference: https://stackoverflow.com/a/1084899
func CircleSegmentIntersect(center Point, radius float64, p1, p2 Point) bool {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	a := dx*dx + dy*dy
	if a == 0 {
		return false
	}

	fx := p1.X - center.X
	fy := p1.Y - center.Y

	b := 2 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	return inUnitRange(t1) || inUnitRange(t2)
}

func inUnitRange(t float64) bool {
	return t >= 0 && t <= 1
}
