package spline

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors returned by Interpolate.
var (
	// ErrLengthMismatch indicates xs and ys have different lengths.
	ErrLengthMismatch = errors.New("spline: xs and ys must have the same length")
	// ErrTooFewPoints indicates fewer than two input points were supplied.
	ErrTooFewPoints = errors.New("spline: at least two input points are required")
	// ErrTooFewSamples indicates count was less than two.
	ErrTooFewSamples = errors.New("spline: count must be at least two")
	// ErrDegenerateSegment indicates two consecutive input points are
	// coincident (or closer than MinSegmentLength), making the chord-length
	// parameterization singular.
	ErrDegenerateSegment = errors.New("spline: consecutive input points must not be coincident")
)

// Options configures Interpolate's degeneracy tolerance.
type Options struct {
	// MinSegmentLength is the minimum chord length permitted between
	// consecutive input points. Defaults to 1e-9.
	MinSegmentLength float64
}

// Option is a functional option for Interpolate.
type Option func(*Options)

// WithMinSegmentLength overrides the minimum permitted chord length between
// consecutive input points.
func WithMinSegmentLength(eps float64) Option {
	return func(o *Options) { o.MinSegmentLength = eps }
}

func defaultOptions() Options {
	return Options{MinSegmentLength: 1e-9}
}

// Interpolate resamples the polyline (xs, ys) into count points on the
// natural cubic spline through the input, parameterized by cumulative chord
// length. The samples are evenly spaced in that parameter; on a curved
// spline their spacing in the plane varies. len(xs) must equal len(ys) and
// be at least 2; count must be at least 2.
func Interpolate(xs, ys []float64, count int, opts ...Option) ([]float64, []float64, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(xs) != len(ys) {
		return nil, nil, ErrLengthMismatch
	}
	n := len(xs)
	if n < 2 {
		return nil, nil, ErrTooFewPoints
	}
	if count < 2 {
		return nil, nil, ErrTooFewSamples
	}

	distances := make([]float64, n)
	for i := 1; i < n; i++ {
		d := floats.Distance([]float64{xs[i], ys[i]}, []float64{xs[i-1], ys[i-1]}, 2)
		if d < cfg.MinSegmentLength {
			return nil, nil, ErrDegenerateSegment
		}
		distances[i] = distances[i-1] + d
	}

	meanStep := distances[n-1] / float64(count-1)
	sampleParams := make([]float64, count)
	for j := range sampleParams {
		sampleParams[j] = float64(j) * meanStep
	}

	xsOut := evaluate(distances, xs, sampleParams)
	ysOut := evaluate(distances, ys, sampleParams)

	return xsOut, ysOut, nil
}

// evaluate samples the natural cubic Hermite spline through (knotX, knotY)
// at each parameter in sampleX. knotX must be strictly increasing.
func evaluate(knotX, knotY, sampleX []float64) []float64 {
	a, b := hermiteCoefficients(knotX, knotY)

	out := make([]float64, len(sampleX))
	seg := 0
	for i, s := range sampleX {
		for seg < len(knotX)-2 && s > knotX[seg+1] {
			seg++
		}

		dx := knotX[seg+1] - knotX[seg]
		t := (s - knotX[seg]) / dx

		out[i] = (1-t)*knotY[seg] + t*knotY[seg+1] + t*(1-t)*(a[seg]*(1-t)+b[seg]*t)
	}

	return out
}

// hermiteCoefficients solves the natural-cubic tridiagonal system for knot
// slopes via the Thomas algorithm (forward sweep of modified coefficients,
// backward substitution), then derives the per-segment Hermite control
// coefficients a_i = k_i*dx - dy, b_i = -k_i+1*dx + dy.
func hermiteCoefficients(x, y []float64) (a, b []float64) {
	n := len(x)

	r := make([]float64, n)
	diag := make([]float64, n)
	upper := make([]float64, n)
	lower := make([]float64, n)

	dx1 := x[1] - x[0]
	upper[0] = 1.0 / dx1
	diag[0] = 2.0 * upper[0]
	r[0] = 3 * (y[1] - y[0]) / (dx1 * dx1)

	for i := 1; i < n-1; i++ {
		dx1 = x[i] - x[i-1]
		dx2 := x[i+1] - x[i]
		lower[i] = 1.0 / dx1
		upper[i] = 1.0 / dx2
		diag[i] = 2.0 * (lower[i] + upper[i])
		dy1 := y[i] - y[i-1]
		dy2 := y[i+1] - y[i]
		r[i] = 3 * (dy1/(dx1*dx1) + dy2/(dx2*dx2))
	}

	dx1 = x[n-1] - x[n-2]
	dy1 := y[n-1] - y[n-2]
	lower[n-1] = 1.0 / dx1
	diag[n-1] = 2.0 * lower[n-1]
	r[n-1] = 3 * (dy1 / (dx1 * dx1))

	// Forward sweep of modified coefficients.
	cPrime := make([]float64, n)
	dPrime := make([]float64, n)
	cPrime[0] = upper[0] / diag[0]
	dPrime[0] = r[0] / diag[0]
	for i := 1; i < n; i++ {
		denom := diag[i] - cPrime[i-1]*lower[i]
		cPrime[i] = upper[i] / denom
		dPrime[i] = (r[i] - dPrime[i-1]*lower[i]) / denom
	}

	// Backward substitution for knot slopes k.
	k := make([]float64, n)
	k[n-1] = dPrime[n-1]
	for i := n - 2; i >= 0; i-- {
		k[i] = dPrime[i] - cPrime[i]*k[i+1]
	}

	a = make([]float64, n-1)
	b = make([]float64, n-1)
	for i := 1; i < n; i++ {
		dx := x[i] - x[i-1]
		dy := y[i] - y[i-1]
		a[i-1] = k[i-1]*dx - dy
		b[i-1] = -k[i]*dx + dy
	}

	return a, b
}
