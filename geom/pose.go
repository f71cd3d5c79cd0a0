package geom

import "math"

// Pose is a planar robot pose: position plus heading. Orientation is carried
// through the algebra; the follower's velocity-limit model uses Length,
// which includes Theta, by default, and PlanarLength, the (X, Y) subvector
// only, when opted in.
type Pose struct {
	X, Y, Theta float64
}

// Add returns the component-wise sum of p and other.
func (p Pose) Add(other Pose) Pose {
	return Pose{X: p.X + other.X, Y: p.Y + other.Y, Theta: p.Theta + other.Theta}
}

// Sub returns the component-wise difference p - other.
func (p Pose) Sub(other Pose) Pose {
	return Pose{X: p.X - other.X, Y: p.Y - other.Y, Theta: p.Theta - other.Theta}
}

// Scale returns p with every component multiplied by k.
func (p Pose) Scale(k float64) Pose {
	return Pose{X: p.X * k, Y: p.Y * k, Theta: p.Theta * k}
}

// Div returns p with every component divided by k.
func (p Pose) Div(k float64) Pose {
	return Pose{X: p.X / k, Y: p.Y / k, Theta: p.Theta / k}
}

// Length returns the Euclidean norm of all three components, including Theta.
//
// This is a deliberate, preserved quirk: the follower's velocity/acceleration
// caps are applied to this length by default. Because the follower never
// independently commands Theta, it stays at its initial value and
// contributes zero to Length in practice — but the coupling is real if a
// caller seeds a non-zero initial Theta. Use PlanarLength for the (x,
// y)-only alternative.
func (p Pose) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Theta*p.Theta)
}

// PlanarLength returns the Euclidean norm of the (X, Y) subvector only,
// excluding Theta. Opt-in alternative to Length; see follower.WithPlanarNorm.
func (p Pose) PlanarLength() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Point returns the (X, Y) subvector as a Point, dropping Theta.
func (p Pose) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// Distance returns the planar Euclidean distance between p and other,
// ignoring Theta.
func (p Pose) Distance(other Pose) float64 {
	return p.Point().Distance(other.Point())
}
