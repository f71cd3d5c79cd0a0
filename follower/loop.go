package follower

import (
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/theta-robotics/quailpath/geom"
)

// Result is the outcome of a completed Loop: the final pose, the full pose
// history recorded along the way, and the wall-clock duration Loop measured
// via its clock.Clock, which a caller can hand to plantrace for a run
// summary.
type Result struct {
	FinalPose geom.Pose
	History   []geom.Pose
	Elapsed   time.Duration
	Ticks     int
}

// Loop drives ctrl to completion, one Tick per iteration, until the
// waypoint queue is exhausted. Each tick's effective duration is
// ctrl.params.LoopTime jittered by up to ±LoopTimeDeviation, drawn from rng.
//
// clk is used only to timestamp the loop's start and end (via Now) so
// Result.Elapsed reflects wall-clock time; Loop never blocks on clk, since
// nothing in this core suspends on I/O (see package doc). Pass a real
// clock.New() in production and clock.NewMock() in tests for a
// deterministic, advanceable Elapsed.
func Loop(clk clock.Clock, ctrl *Controller, rng *rand.Rand) Result {
	start := clk.Now()
	ticks := 0

	for {
		dtEff := ctrl.params.LoopTime
		if dev := ctrl.params.LoopTimeDeviation; dev > 0 {
			dtEff += (rng.Float64()*2 - 1) * dev
		}

		done := ctrl.Tick(dtEff)
		ticks++
		if done {
			break
		}
	}

	return Result{
		FinalPose: ctrl.Pose(),
		History:   ctrl.History(),
		Elapsed:   clk.Now().Sub(start),
		Ticks:     ticks,
	}
}
