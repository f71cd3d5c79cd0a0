package plantrace

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Run tracks one planner+follower invocation from start to finish.
type Run struct {
	ID        uuid.UUID
	StartedAt time.Time
	logger    *slog.Logger
}

// New starts a Run, stamping it with a fresh identifier and the
// caller-supplied start time now (usually time.Now(), or a fixed time in
// tests).
func New(now time.Time) Run {
	return Run{ID: uuid.New(), StartedAt: now}
}

// Logger returns a structured logger for this run, every record tagged
// with run_id. Subsequent calls reuse the same child logger.
func (r *Run) Logger() *slog.Logger {
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run_id", r.ID.String())
	}
	return r.logger
}

// Summary is the record produced once a run completes.
type Summary struct {
	RunID      uuid.UUID     `yaml:"run_id"`
	Ticks      int           `yaml:"ticks"`
	PathLength int           `yaml:"path_length"`
	WallTime   time.Duration `yaml:"wall_time"`
	Arrived    bool          `yaml:"arrived"`
}

// Summarize builds a Summary for a completed run given the planned path
// length (number of cells/waypoints), the number of follower ticks it took,
// the measured wall time, and whether the follower reported arrival.
func (r Run) Summarize(pathLength, ticks int, wallTime time.Duration, arrived bool) Summary {
	return Summary{
		RunID:      r.ID,
		Ticks:      ticks,
		PathLength: pathLength,
		WallTime:   wallTime,
		Arrived:    arrived,
	}
}
