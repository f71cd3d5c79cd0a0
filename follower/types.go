package follower

import "errors"

// ErrEmptyQueue is returned by New when constructed with no waypoints.
// During a Loop, an empty queue is not an error: it is the terminal "done"
// signal (see package doc).
var ErrEmptyQueue = errors.New("follower: waypoint queue must not be empty")

// Params carries the follower's immutable kinematic limits and behavioral
// toggles.
type Params struct {
	// LoopTime is the nominal tick duration, in seconds.
	LoopTime float64
	// LoopTimeDeviation is the uniform-jitter half-width added to the
	// actual tick duration driving Loop.
	LoopTimeDeviation float64
	// MaxVelocity caps per-tick displacement magnitude, in units/s.
	MaxVelocity float64
	// MaxAcceleration caps acceleration magnitude, in units/s^2.
	MaxAcceleration float64
	// CruiseVelocity is the target speed outside SlowDownRadius.
	CruiseVelocity float64
	// PrecisionRadius is the arrival tolerance around a waypoint.
	PrecisionRadius float64
	// SlowDownRadius is the distance to the final waypoint below which
	// cruise-speed rescaling disengages, letting speed decay proportionally.
	SlowDownRadius float64
}

// Option configures a Controller beyond its Params.
type Option func(*config)

type config struct {
	planarNorm   bool
	historyLimit int
}

func defaultConfig() config {
	return config{planarNorm: false, historyLimit: 0}
}

// WithPlanarNorm switches the velocity/acceleration cap norm from
// Pose.Length (the default, which includes Theta — see package doc) to
// Pose.PlanarLength, which excludes Theta. Opt-in only: the Theta-inclusive
// norm is the reference behavior.
func WithPlanarNorm() Option {
	return func(c *config) { c.planarNorm = true }
}

// WithHistoryLimit caps the number of past poses retained in History to the
// most recent n; an unlimited history otherwise grows for the life of the
// Controller. n <= 0 means unlimited (the default).
func WithHistoryLimit(n int) Option {
	return func(c *config) { c.historyLimit = n }
}
