package thetastar

import "errors"

// ErrBlockedEndpoint indicates the start or goal cell is blocked on the
// supplied grid and WithForceFreeEndpoints(true) was not supplied.
var ErrBlockedEndpoint = errors.New("thetastar: start or goal cell is blocked")

// Neighborhood selects which of the 8 surrounding cells are considered
// neighbors during expansion.
type Neighborhood int

const (
	// EightConnected expands all 8 surrounding cells, including diagonals.
	// This is the any-angle default: Theta*'s line-of-sight shortcutting
	// needs diagonal moves available to find true straight-line paths.
	EightConnected Neighborhood = iota
	// Manhattan expands only the 4 orthogonal neighbors (N, E, S, W).
	//
	// Named explicitly rather than inferred from an index filter: deriving
	// "no diagonals" from an `i == j` comparison over offsets in
	// {-1, 0, 1} excludes (-1,-1) and (1,1) but keeps (-1,1) and (1,-1) —
	// a genuine diagonal leak. This type makes the two neighbor sets
	// explicit instead.
	Manhattan
)

// Options configures a Search call.
type Options struct {
	// HeuristicWeight scales the heuristic term in f = g + w*h. 1.0 (the
	// default) is admissible; w > 1 trades optimality (up to a factor of w)
	// for a faster search.
	HeuristicWeight float64
	// Neighbors selects EightConnected (default) or Manhattan expansion.
	Neighbors Neighborhood
	// ForceFreeEndpoints, if true, treats the start and goal cells as free
	// regardless of grid occupancy, instead of rejecting the call with
	// ErrBlockedEndpoint.
	ForceFreeEndpoints bool
	// JumpAcceleration enables an optional jump-point-style neighbor
	// expansion that advances along open rays before relaxing, as a speed
	// optimization. It is not part of the correctness contract.
	JumpAcceleration bool
}

// Option is a functional option for Search.
type Option func(*Options)

// WithHeuristicWeight sets the heuristic weight w in f = g + w*h.
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) { o.HeuristicWeight = w }
}

// WithNeighbors selects the neighbor expansion set.
func WithNeighbors(n Neighborhood) Option {
	return func(o *Options) { o.Neighbors = n }
}

// WithForceFreeEndpoints forces the start and goal cells to be treated as
// free, regardless of grid occupancy.
func WithForceFreeEndpoints(force bool) Option {
	return func(o *Options) { o.ForceFreeEndpoints = force }
}

// WithJumpAcceleration enables the optional jump-point neighbor expansion.
func WithJumpAcceleration(enabled bool) Option {
	return func(o *Options) { o.JumpAcceleration = enabled }
}

func defaultOptions() Options {
	return Options{
		HeuristicWeight:    1.0,
		Neighbors:          EightConnected,
		ForceFreeEndpoints: false,
		JumpAcceleration:   false,
	}
}
