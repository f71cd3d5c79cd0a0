// Command quailplan plans a path across an occupancy grid and drives a
// simulated follower along it, printing a run summary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/benbjohnson/clock"

	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/gridio"
	"github.com/theta-robotics/quailpath/planconfig"
	"github.com/theta-robotics/quailpath/quailpath"
)

func main() {
	gridPath := flag.String("grid", "", "path to a dense CSV occupancy grid (required)")
	startFlag := flag.String("start", "0,0", "start cell, \"x,y\"")
	goalFlag := flag.String("goal", "0,0", "goal cell, \"x,y\"")
	configPath := flag.String("config", "", "optional YAML config overriding embedded defaults")
	splineResolution := flag.Float64("spline-resolution", 0, "override planner.spline_resolution (0 keeps the config value)")
	seed := flag.Int64("seed", 1, "RNG seed for follower tick jitter")
	flag.Parse()

	if *gridPath == "" {
		fmt.Fprintln(os.Stderr, "quailplan: -grid is required")
		flag.Usage()
		os.Exit(1)
	}

	start, err := parseCell(*startFlag)
	if err != nil {
		log.Fatalf("quailplan: parsing -start: %v", err)
	}
	goal, err := parseCell(*goalFlag)
	if err != nil {
		log.Fatalf("quailplan: parsing -goal: %v", err)
	}

	f, err := os.Open(*gridPath)
	if err != nil {
		log.Fatalf("quailplan: opening grid: %v", err)
	}
	defer f.Close()

	grid, err := gridio.LoadCSV(f)
	if err != nil {
		log.Fatalf("quailplan: loading grid: %v", err)
	}

	cfg, err := planconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("quailplan: loading config: %v", err)
	}
	if *splineResolution > 0 {
		cfg.Planner.SplineResolution = *splineResolution
	}

	result, err := quailpath.Plan(grid, start, goal, cfg, clock.New(), *seed)
	if err != nil {
		log.Fatalf("quailplan: %v", err)
	}

	fmt.Printf("run %s: %d planned cells, %d ticks, arrived=%v, wall=%s\n",
		result.Summary.RunID, result.Summary.PathLength, result.Summary.Ticks,
		result.Summary.Arrived, result.Summary.WallTime)
}

func parseCell(s string) (geom.Cell, error) {
	var x, y int
	if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
		return geom.Cell{}, fmt.Errorf("expected \"x,y\", got %q: %w", s, err)
	}
	return geom.Cell{X: x, Y: y}, nil
}
