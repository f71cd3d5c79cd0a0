package planconfig

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/theta-robotics/quailpath/follower"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the top-level tuning document: follower kinematic limits plus
// the planning-time knobs that sit alongside them.
type Config struct {
	Follower FollowerConfig `yaml:"follower"`
	Planner  PlannerConfig  `yaml:"planner"`
}

// FollowerConfig mirrors follower.Params, field for field, so it can be
// decoded from YAML and converted with ToParams.
type FollowerConfig struct {
	LoopTime          float64 `yaml:"loop_time"`
	LoopTimeDeviation float64 `yaml:"loop_time_deviation"`
	MaxVelocity       float64 `yaml:"max_velocity"`
	MaxAcceleration   float64 `yaml:"max_acceleration"`
	CruiseVelocity    float64 `yaml:"cruise_velocity"`
	PrecisionRadius   float64 `yaml:"precision_radius"`
	SlowDownRadius    float64 `yaml:"slow_down_radius"`
}

// ToParams converts the decoded configuration into follower.Params.
func (f FollowerConfig) ToParams() follower.Params {
	return follower.Params{
		LoopTime:          f.LoopTime,
		LoopTimeDeviation: f.LoopTimeDeviation,
		MaxVelocity:       f.MaxVelocity,
		MaxAcceleration:   f.MaxAcceleration,
		CruiseVelocity:    f.CruiseVelocity,
		PrecisionRadius:   f.PrecisionRadius,
		SlowDownRadius:    f.SlowDownRadius,
	}
}

// PlannerConfig carries the orchestration knobs that sit outside the
// follower's own parameter set.
type PlannerConfig struct {
	UseSpline        bool    `yaml:"use_spline"`
	SplineResolution float64 `yaml:"spline_resolution"`
	HeuristicWeight  float64 `yaml:"heuristic_weight"`
}

// Default returns the configuration embedded in the binary at build time,
// with no user overrides applied.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("planconfig: parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load reads embedded defaults, then layers path's contents on top of them
// so a user file need only set the keys it wants to override. If path is
// empty, Load behaves exactly like Default.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("planconfig: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("planconfig: parsing %s: %w", path, err)
	}

	return cfg, nil
}
