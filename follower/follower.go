package follower

import "github.com/theta-robotics/quailpath/geom"

// Waypoint is a target pose in the follow queue. Theta is carried but unused
// by the arrival test, which always compares planar distance.
type Waypoint = geom.Pose

// Controller holds the mutable state of a single in-progress follow: the
// robot's current pose, the remaining waypoint queue, and pose history.
//
// A Controller is not safe for concurrent use; Tick mutates it in place.
type Controller struct {
	params Params
	cfg    config

	pose    geom.Pose
	queue   []Waypoint
	history []geom.Pose
}

// New builds a Controller starting at initial, following queue in order.
// queue must be non-empty. History starts seeded with the initial pose.
func New(initial geom.Pose, queue []Waypoint, params Params, opts ...Option) (*Controller, error) {
	if len(queue) == 0 {
		return nil, ErrEmptyQueue
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	owned := make([]Waypoint, len(queue))
	copy(owned, queue)

	return &Controller{
		params:  params,
		cfg:     cfg,
		pose:    initial,
		queue:   owned,
		history: []geom.Pose{initial},
	}, nil
}

// Pose returns the robot's current pose.
func (c *Controller) Pose() geom.Pose { return c.pose }

// Remaining returns the waypoints not yet arrived at. The returned slice
// must not be mutated by the caller.
func (c *Controller) Remaining() []Waypoint { return c.queue }

// Done reports whether the queue has been fully consumed.
func (c *Controller) Done() bool { return len(c.queue) == 0 }

// History returns the sequence of pre-integration poses recorded at the
// start of every tick, oldest first, bounded by WithHistoryLimit if set.
// The returned slice must not be mutated by the caller.
func (c *Controller) History() []geom.Pose { return c.history }

func (c *Controller) norm(p geom.Pose) float64 {
	if c.cfg.planarNorm {
		return p.PlanarLength()
	}
	return p.Length()
}

// Tick advances the controller by one control step of effective duration
// dtEff (seconds). It is a pure function of the
// controller's current state and dtEff: it performs no I/O and reads no
// clock. It reports whether the queue is now empty (the follow is complete).
//
// Steps, in order:
//  1. Arrival test against the front waypoint, repeated so a single large
//     step can consume more than one waypoint in one tick.
//  2. If the queue is now empty, stop: no motion is computed.
//  3. Estimate current velocity by finite difference against the last
//     recorded history entry, using the nominal tick duration (not dtEff).
//  4. Compute a desired velocity toward the new front waypoint, rescaled to
//     CruiseVelocity outside SlowDownRadius of the final waypoint, and
//     capped so one nominal tick's displacement does not exceed MaxVelocity.
//  5. Limit the implied acceleration to MaxAcceleration.
//  6. Integrate: new velocity over one nominal tick, new pose over dtEff.
//  7. Append the pre-integration pose to History.
func (c *Controller) Tick(dtEff float64) (done bool) {
	prevPose := c.history[len(c.history)-1]

	for len(c.queue) > 0 && c.arrived(c.queue[0], prevPose) {
		c.queue = c.queue[1:]
	}
	if len(c.queue) == 0 {
		return true
	}

	nominal := c.params.LoopTime
	velocity := c.pose.Sub(prevPose).Div(nominal)

	front := c.queue[0]
	final := c.queue[len(c.queue)-1]
	desired := front.Sub(c.pose)

	if c.pose.Distance(final) >= c.params.SlowDownRadius {
		if n := c.norm(desired); n > 0 {
			desired = desired.Scale(c.params.CruiseVelocity / n)
		}
	}

	displacement := desired.Scale(nominal)
	if dl := c.norm(displacement); dl > c.params.MaxVelocity {
		displacement = displacement.Scale(c.params.MaxVelocity / dl)
	}
	desired = displacement.Div(nominal)

	accel := desired.Sub(velocity).Div(nominal)
	if al := c.norm(accel); al > c.params.MaxAcceleration {
		accel = accel.Scale(c.params.MaxAcceleration / al)
	}

	newVelocity := velocity.Add(accel.Scale(nominal))

	c.appendHistory(c.pose)
	c.pose = c.pose.Add(newVelocity.Scale(dtEff))

	return false
}

// arrived implements the arrival predicate: an exact hit within
// PrecisionRadius of front, or a swept-circle hit meaning the robot moved
// past front this tick (it is now farther from front than it moved) and
// front's tolerance circle intersects the segment prev -> current pose.
func (c *Controller) arrived(front, prev geom.Pose) bool {
	if c.pose.Distance(front) < c.params.PrecisionRadius {
		return true
	}
	if prev.Distance(c.pose) <= c.pose.Distance(front) {
		return false
	}
	return geom.CircleSegmentIntersect(front.Point(), c.params.PrecisionRadius, prev.Point(), c.pose.Point())
}

func (c *Controller) appendHistory(p geom.Pose) {
	c.history = append(c.history, p)
	if limit := c.cfg.historyLimit; limit > 0 && len(c.history) > limit {
		c.history = c.history[len(c.history)-limit:]
	}
}
