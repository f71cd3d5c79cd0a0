// Command quailviz plans a path and animates the follower driving it in a
// terminal, using tcell. It is the only package in this module that
// imports a display technology; core planning and following packages stay
// render-agnostic behind render.Sink.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gdamore/tcell/v2"

	"github.com/theta-robotics/quailpath/geom"
	"github.com/theta-robotics/quailpath/gridio"
	"github.com/theta-robotics/quailpath/occgrid"
	"github.com/theta-robotics/quailpath/planconfig"
	"github.com/theta-robotics/quailpath/quailpath"
	"github.com/theta-robotics/quailpath/render"
)

func main() {
	gridPath := flag.String("grid", "", "path to a dense CSV occupancy grid (required)")
	startFlag := flag.String("start", "0,0", "start cell, \"x,y\"")
	goalFlag := flag.String("goal", "0,0", "goal cell, \"x,y\"")
	configPath := flag.String("config", "", "optional YAML config overriding embedded defaults")
	frameDelay := flag.Duration("frame-delay", 30*time.Millisecond, "delay between animated history frames")
	flag.Parse()

	if *gridPath == "" {
		fmt.Fprintln(os.Stderr, "quailviz: -grid is required")
		flag.Usage()
		os.Exit(1)
	}

	start, err := parseCell(*startFlag)
	if err != nil {
		log.Fatalf("quailviz: parsing -start: %v", err)
	}
	goal, err := parseCell(*goalFlag)
	if err != nil {
		log.Fatalf("quailviz: parsing -goal: %v", err)
	}

	f, err := os.Open(*gridPath)
	if err != nil {
		log.Fatalf("quailviz: opening grid: %v", err)
	}
	grid, err := gridio.LoadCSV(f)
	f.Close()
	if err != nil {
		log.Fatalf("quailviz: loading grid: %v", err)
	}

	cfg, err := planconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("quailviz: loading config: %v", err)
	}

	result, err := quailpath.Plan(grid, start, goal, cfg, clock.New(), 1)
	if err != nil {
		log.Fatalf("quailviz: %v", err)
	}

	sink, err := newTcellSink()
	if err != nil {
		log.Fatalf("quailviz: opening terminal: %v", err)
	}
	defer sink.Close()

	quit := make(chan struct{})
	go pollQuit(sink.screen, quit)

	animate(sink, grid, result.Path, result.Final.History, *frameDelay, quit)
}

func animate(sink render.Sink, grid occgrid.Grid, path []geom.Cell, history []geom.Pose, delay time.Duration, quit <-chan struct{}) {
	for _, pose := range history {
		select {
		case <-quit:
			return
		default:
		}
		sink.DrawGrid(grid)
		sink.DrawPath(path)
		sink.DrawPose(pose)
		sink.Flush()
		time.Sleep(delay)
	}
}

func pollQuit(screen tcell.Screen, quit chan<- struct{}) {
	for {
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			if e.Key() == tcell.KeyEscape || e.Rune() == 'q' {
				close(quit)
				return
			}
		case nil:
			return
		}
	}
}

func parseCell(s string) (geom.Cell, error) {
	var x, y int
	if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
		return geom.Cell{}, fmt.Errorf("expected \"x,y\", got %q: %w", s, err)
	}
	return geom.Cell{X: x, Y: y}, nil
}
