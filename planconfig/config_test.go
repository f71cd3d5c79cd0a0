package planconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theta-robotics/quailpath/planconfig"
)

func TestDefault(t *testing.T) {
	cfg, err := planconfig.Default()
	require.NoError(t, err)

	assert.Equal(t, 0.02, cfg.Follower.LoopTime)
	assert.Equal(t, 62.0, cfg.Follower.MaxVelocity)
	assert.True(t, cfg.Planner.UseSpline)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("follower:\n  cruise_velocity: 99.0\n"), 0o644))

	cfg, err := planconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 99.0, cfg.Follower.CruiseVelocity)
	// Untouched keys keep their embedded default.
	assert.Equal(t, 0.02, cfg.Follower.LoopTime)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	want, err := planconfig.Default()
	require.NoError(t, err)

	got, err := planconfig.Load("")
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestFollowerConfig_ToParams(t *testing.T) {
	cfg, err := planconfig.Default()
	require.NoError(t, err)

	params := cfg.Follower.ToParams()
	assert.Equal(t, cfg.Follower.LoopTime, params.LoopTime)
	assert.Equal(t, cfg.Follower.MaxAcceleration, params.MaxAcceleration)
}
