package follower_test

import (
	"fmt"
	"math/rand"

	"github.com/benbjohnson/clock"

	"github.com/theta-robotics/quailpath/follower"
	"github.com/theta-robotics/quailpath/geom"
)

// This example follows a single waypoint to completion and reports how
// close the final pose landed to the target.
func Example() {
	params := follower.Params{
		LoopTime:        0.02,
		MaxVelocity:     62,
		MaxAcceleration: 25,
		CruiseVelocity:  30,
		PrecisionRadius: 2,
		SlowDownRadius:  10,
	}

	ctrl, err := follower.New(geom.Pose{}, []follower.Waypoint{{X: 10, Y: 0}}, params)
	if err != nil {
		fmt.Println(err)
		return
	}

	rng := rand.New(rand.NewSource(1))
	result := follower.Loop(clock.NewMock(), ctrl, rng)

	arrived := result.FinalPose.Distance(geom.Pose{X: 10, Y: 0}) < params.PrecisionRadius
	fmt.Println(arrived)
	// Output: true
}
