package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()

	require.NoError(t, c.Validate())
	assert.Equal(t, 60.0, c.Camera.FOV)
	assert.Equal(t, 850.0, c.View.MaxDistance)
	assert.Equal(t, 200.0, c.View.WallHeight)
	assert.Equal(t, 5, c.Walls.RandomCount)
	assert.Equal(t, 10.0, c.Walls.Fuzziness)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raycaster.json")
	jsonData := `{
		"camera": {"fov": 90},
		"view": {"max_distance": 1200},
		"walls": {"random_count": 12}
	}`
	require.NoError(t, os.WriteFile(path, []byte(jsonData), 0o644))

	c, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 90.0, c.Camera.FOV)
	assert.Equal(t, 1200.0, c.View.MaxDistance)
	assert.Equal(t, 12, c.Walls.RandomCount)
	// Untouched fields keep their defaults
	assert.Equal(t, 130.0, c.Camera.X)
	assert.Equal(t, 200.0, c.View.WallHeight)
	assert.Equal(t, 600, c.Layout.MapWidth)
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"camera": `), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"view": {"max_distance": 0}}`), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "max distance")
}

func TestLoadConfigRejectsTinyAngleStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "step.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"view": {"angle_step": 1e-20}}`), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "angle step")
}

func TestValidateAcceptsFinestStep(t *testing.T) {
	c := DefaultConfig()
	c.View.AngleStep = MinAngleStep
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fov", func(c *Config) { c.Camera.FOV = 0 }},
		{"negative wall height", func(c *Config) { c.View.WallHeight = -1 }},
		{"zero angle step", func(c *Config) { c.View.AngleStep = 0 }},
		{"tiny angle step", func(c *Config) { c.View.AngleStep = 1e-20 }},
		{"NaN angle step", func(c *Config) { c.View.AngleStep = math.NaN() }},
		{"too many rays", func(c *Config) {
			c.Camera.FOV = 400
			c.View.AngleStep = MinAngleStep
		}},
		{"negative wall count", func(c *Config) { c.Walls.RandomCount = -3 }},
		{"empty map", func(c *Config) { c.Layout.MapWidth = 0 }},
		{"empty viewer", func(c *Config) { c.Layout.ViewerHeight = 0 }},
		{"inverted limit", func(c *Config) { c.Limits.FOV = Range{Min: 120, Max: 10} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 10, Max: 120}

	assert.Equal(t, 10.0, r.Clamp(5))
	assert.Equal(t, 60.0, r.Clamp(60))
	assert.Equal(t, 120.0, r.Clamp(500))
}
