// Package follower drives a point robot along an ordered queue of waypoints
// at a fixed tick rate, subject to cruise speed, maximum speed, maximum
// acceleration, a deceleration radius near the final waypoint, and an
// arrival predicate that tolerates missed exact hits via a swept-circle
// segment intersection test against the most recent motion.
//
// One Tick call is a pure function of (state, Δt_eff): it never reads a
// wall clock itself. Loop wraps Tick in a fixed-rate driver against a
// clock.Clock (real or a mock), keeping the per-tick math independently
// testable from the timing loop around it.
//
// Two deliberate, preserved quirks (see DESIGN.md):
//
//   - The velocity estimate (Tick step 3) divides by the nominal tick
//     duration, not the jittered one actually observed, biasing the
//     estimate whenever LoopTimeDeviation > 0.
//   - Pose.Length, which includes Theta, is the default norm used by the
//     velocity/acceleration caps (steps 4-5); Theta never actually moves
//     under this controller, so the coupling is inert in practice but is
//     preserved rather than silently narrowed to the planar subvector.
//
// Complexity: O(1) per tick; O(ticks) for Loop.
package follower
