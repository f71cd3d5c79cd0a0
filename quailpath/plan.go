package quailpath

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/benbjohnson/clock"

	"github.com/theta-robotics/quailpath/follower"
	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/occgrid"
	"github.com/theta-robotics/quailpath/planconfig"
	"github.com/theta-robotics/quailpath/plantrace"
	"github.com/theta-robotics/quailpath/spline"
	"github.com/theta-robotics/quailpath/thetastar"
)

// ErrNoPath indicates the goal is unreachable from the start cell.
var ErrNoPath = errors.New("quailpath: no path from start to goal")

// Result is the output of a complete plan-and-follow run.
type Result struct {
	Path    []geom.Cell
	Samples []geom.Point
	Final   follower.Result
	Summary plantrace.Summary
}

// Plan runs the full pipeline: Theta* search, identity cell-to-world
// conversion, optional spline smoothing, waypoint construction (θ = 0
// throughout), and a follower Loop to completion.
//
// clk times the run for the returned plantrace.Summary; rngSeed seeds the
// follower's tick-jitter draw. The run is bit-exact reproducible when
// cfg.Follower.LoopTimeDeviation is zero, and reproducible given the same
// rngSeed otherwise.
func Plan(grid occgrid.Grid, start, goal geom.Cell, cfg planconfig.Config, clk clock.Clock, rngSeed int64) (*Result, error) {
	run := plantrace.New(clk.Now())
	logger := run.Logger()

	path, found, err := thetastar.Search(grid, start, goal, thetastar.WithHeuristicWeight(cfg.Planner.HeuristicWeight))
	if err != nil {
		return nil, fmt.Errorf("quailpath: planning: %w", err)
	}
	if !found {
		logger.Warn("no_path", "start", start, "goal", goal)
		return nil, ErrNoPath
	}
	logger.Info("path_found", "cells", len(path))

	samples := toWorld(path)

	if cfg.Planner.UseSpline {
		samples, err = smooth(samples, cfg.Planner.SplineResolution)
		if err != nil {
			return nil, fmt.Errorf("quailpath: smoothing: %w", err)
		}
	}

	waypoints := make([]follower.Waypoint, len(samples))
	for i, p := range samples {
		waypoints[i] = geom.Pose{X: p.X, Y: p.Y, Theta: 0}
	}

	initial := geom.Pose{X: waypoints[0].X, Y: waypoints[0].Y, Theta: 0}
	ctrl, err := follower.New(initial, waypoints, cfg.Follower.ToParams())
	if err != nil {
		return nil, fmt.Errorf("quailpath: initializing follower: %w", err)
	}

	rng := rand.New(rand.NewSource(rngSeed))
	start2 := clk.Now()
	final := follower.Loop(clk, ctrl, rng)
	wallTime := clk.Now().Sub(start2)

	arrived := final.FinalPose.Distance(waypoints[len(waypoints)-1]) < cfg.Follower.PrecisionRadius
	summary := run.Summarize(len(path), final.Ticks, wallTime, arrived)
	logger.Info("run_complete", "ticks", final.Ticks, "arrived", arrived)

	return &Result{Path: path, Samples: samples, Final: final, Summary: summary}, nil
}

// toWorld converts planner cells to world points under the identity
// mapping used as the default.
func toWorld(path []geom.Cell) []geom.Point {
	points := make([]geom.Point, len(path))
	for i, c := range path {
		points[i] = c.ToPoint()
	}
	return points
}

// smooth resamples points via a natural cubic spline to
// resolution*len(points) samples.
func smooth(points []geom.Point, resolution float64) ([]geom.Point, error) {
	if len(points) < 2 {
		return points, nil
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	count := int(resolution * float64(len(points)))
	if count < 2 {
		count = 2
	}

	xsOut, ysOut, err := spline.Interpolate(xs, ys, count)
	if err != nil {
		return nil, err
	}

	out := make([]geom.Point, count)
	for i := range out {
		out[i] = geom.Point{X: xsOut[i], Y: ysOut[i]}
	}
	return out, nil
}
