// Package config provides the tunable settings of the ray caster.
// Settings can be loaded from a JSON file; anything the file leaves out keeps
// its default.
package config

import (
	"encoding/json"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"chosenoffset.com/raycaster/internal/core/raycast"
)

// MinAngleStep is the finest fan spacing a config may ask for, in degrees.
const MinAngleStep = 0.01

// Config holds all settings for a session
type Config struct {
	// Camera start state
	Camera CameraConfig `json:"camera"`

	// Ray casting and projection
	View ViewConfig `json:"view"`

	// Wall layout and editing
	Walls WallsConfig `json:"walls"`

	// Input step sizes
	Controls ControlsConfig `json:"controls"`

	// Window layout
	Layout LayoutConfig `json:"layout"`

	// Ranges enforced by the parameter controls
	Limits Limits `json:"limits"`
}

// CameraConfig defines where the camera starts
type CameraConfig struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"` // Degrees, 0 = +x
	FOV     float64 `json:"fov"`     // Degrees
}

// ViewConfig defines ray casting and projection parameters
type ViewConfig struct {
	MaxDistance float64 `json:"max_distance"` // Rays report this when nothing is hit
	WallHeight  float64 `json:"wall_height"`  // Synthetic height of every wall
	AngleStep   float64 `json:"angle_step"`   // Degrees between rays in the fan
}

// WallsConfig defines the initial layout and hit-testing
type WallsConfig struct {
	RandomCount int     `json:"random_count"` // Walls added by randomize
	Fuzziness   float64 `json:"fuzziness"`    // Hit-test tolerance for removal
}

// ControlsConfig defines how far each input moves a value
type ControlsConfig struct {
	MoveStep        float64 `json:"move_step"`
	TurnStep        float64 `json:"turn_step"`
	FOVStep         float64 `json:"fov_step"`
	WallHeightStep  float64 `json:"wall_height_step"`
	MaxDistanceStep float64 `json:"max_distance_step"`
}

// LayoutConfig defines the window and the two views inside it
type LayoutConfig struct {
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
	MapWidth     int `json:"map_width"`     // Top-down view, also the play area
	MapHeight    int `json:"map_height"`
	ViewerWidth  int `json:"viewer_width"`  // First-person view
	ViewerHeight int `json:"viewer_height"`
	Spacing      int `json:"spacing"`
}

// Range is an inclusive interval
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return mgl64.Clamp(v, r.Min, r.Max)
}

// Limits holds the ranges of the user-adjustable parameters
type Limits struct {
	FOV         Range `json:"fov"`
	MaxDistance Range `json:"max_distance"`
	WallHeight  Range `json:"wall_height"`
}

// DefaultConfig returns the stock layout: a 600x600 map next to a 602x400 viewer
func DefaultConfig() *Config {
	return &Config{
		Camera: CameraConfig{
			X:       130,
			Y:       240,
			Heading: 0,
			FOV:     60,
		},
		View: ViewConfig{
			MaxDistance: 850, // More than the map diagonal, so everything is visible
			WallHeight:  200,
			AngleStep:   0.2,
		},
		Walls: WallsConfig{
			RandomCount: 5,
			Fuzziness:   10,
		},
		Controls: ControlsConfig{
			MoveStep:        5,
			TurnStep:        5,
			FOVStep:         5,
			WallHeightStep:  10,
			MaxDistanceStep: 50,
		},
		Layout: LayoutConfig{
			WindowWidth:  1225,
			WindowHeight: 640,
			MapWidth:     600,
			MapHeight:    600,
			ViewerWidth:  602,
			ViewerHeight: 400,
			Spacing:      10,
		},
		Limits: Limits{
			FOV:         Range{Min: 10, Max: 120},
			MaxDistance: Range{Min: 100, Max: 1500},
			WallHeight:  Range{Min: 50, Max: 400},
		},
	}
}

// LoadConfig loads settings from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(err, "failed to read config")
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return config, nil
}

// Validate checks the values the core would reject
func (c *Config) Validate() error {
	if c.Camera.FOV <= 0 {
		return errors.Errorf("camera fov must be positive, got %v", c.Camera.FOV)
	}
	if c.View.MaxDistance <= 0 {
		return errors.Errorf("max distance must be positive, got %v", c.View.MaxDistance)
	}
	if c.View.WallHeight <= 0 {
		return errors.Errorf("wall height must be positive, got %v", c.View.WallHeight)
	}
	if !(c.View.AngleStep >= MinAngleStep) {
		return errors.Errorf("angle step must be at least %v, got %v", MinAngleStep, c.View.AngleStep)
	}
	if c.Walls.RandomCount < 0 {
		return errors.Errorf("random wall count must not be negative, got %d", c.Walls.RandomCount)
	}
	if c.Layout.MapWidth <= 0 || c.Layout.MapHeight <= 0 {
		return errors.Errorf("map size must be positive, got %dx%d", c.Layout.MapWidth, c.Layout.MapHeight)
	}
	if c.Layout.ViewerWidth <= 0 || c.Layout.ViewerHeight <= 0 {
		return errors.Errorf("viewer size must be positive, got %dx%d", c.Layout.ViewerWidth, c.Layout.ViewerHeight)
	}
	for name, r := range map[string]Range{
		"fov":          c.Limits.FOV,
		"max_distance": c.Limits.MaxDistance,
		"wall_height":  c.Limits.WallHeight,
	} {
		if r.Min <= 0 || r.Min > r.Max {
			return errors.Errorf("limit %s is not a positive range: [%v, %v]", name, r.Min, r.Max)
		}
	}
	widest := math.Max(c.Camera.FOV, c.Limits.FOV.Max)
	if widest/c.View.AngleStep >= raycast.MaxFanRays {
		return errors.Errorf("angle step %v gives more than %d rays for a %v° fan", c.View.AngleStep, raycast.MaxFanRays, widest)
	}
	return nil
}
