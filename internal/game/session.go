package game

import (
	"log"
	"math/rand"

	"github.com/pkg/errors"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/raycast"
)

// Settings are the user-adjustable view parameters.
type Settings struct {
	FOV         float64
	MaxDistance float64
	WallHeight  float64
}

// Session owns the camera and walls and is the only way the presentation
// layer touches them. Every query recomputes its frame from scratch.
type Session struct {
	camera    *raycast.Camera
	walls     *raycast.BoundarySet
	projector *raycast.Projector
	rng       *rand.Rand

	width, height float64
	angleStep     float64
	fuzziness     float64
	randomCount   int
	defaults      Settings
}

// NewSession creates a session from cfg with randomly placed walls.
func NewSession(cfg *config.Config, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	camera, err := raycast.NewCamera(
		raycast.Point{X: cfg.Camera.X, Y: cfg.Camera.Y},
		cfg.Camera.Heading,
		cfg.Camera.FOV,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create camera")
	}

	projector, err := raycast.NewProjector(
		cfg.View.WallHeight,
		cfg.View.MaxDistance,
		float64(cfg.Layout.ViewerWidth),
		float64(cfg.Layout.ViewerHeight),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create projector")
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	s := &Session{
		camera:      camera,
		projector:   projector,
		rng:         rng,
		width:       float64(cfg.Layout.MapWidth),
		height:      float64(cfg.Layout.MapHeight),
		angleStep:   cfg.View.AngleStep,
		fuzziness:   cfg.Walls.Fuzziness,
		randomCount: cfg.Walls.RandomCount,
		defaults: Settings{
			FOV:         cfg.Camera.FOV,
			MaxDistance: cfg.View.MaxDistance,
			WallHeight:  cfg.View.WallHeight,
		},
	}
	s.walls = raycast.NewBoundarySet(s.width, s.height)
	s.RandomizeWalls(s.randomCount)

	return s, nil
}

// Move steps the camera along its heading.
func (s *Session) Move(delta float64) {
	s.camera.Move(delta)
}

// Turn rotates the camera by delta degrees.
func (s *Session) Turn(delta float64) {
	s.camera.Turn(delta)
}

// SetFOV changes the field of view.
func (s *Session) SetFOV(degrees float64) error {
	return s.camera.SetFOV(degrees)
}

// SetMaxDistance changes the maximum view distance.
func (s *Session) SetMaxDistance(d float64) error {
	return s.projector.SetMaxDistance(d)
}

// SetWallHeight changes the synthetic wall height.
func (s *Session) SetWallHeight(h float64) error {
	return s.projector.SetWallHeight(h)
}

// ResetSettings restores FOV, view distance and wall height to their
// configured values.
func (s *Session) ResetSettings() {
	s.camera.FOV = s.defaults.FOV
	s.projector.MaxDistance = s.defaults.MaxDistance
	s.projector.WallHeight = s.defaults.WallHeight
}

// Settings returns the current view parameters.
func (s *Session) Settings() Settings {
	return Settings{
		FOV:         s.camera.FOV,
		MaxDistance: s.projector.MaxDistance,
		WallHeight:  s.projector.WallHeight,
	}
}

// DefaultSettings returns the configured view parameters.
func (s *Session) DefaultSettings() Settings {
	return s.defaults
}

// Camera returns a copy of the camera state.
func (s *Session) Camera() raycast.Camera {
	return *s.camera
}

// AddWall adds a user wall.
func (s *Session) AddWall(seg raycast.Segment) {
	s.walls.Add(seg)
}

// RemoveWallAt removes the wall under p, if any.
func (s *Session) RemoveWallAt(p raycast.Point) bool {
	return s.walls.RemoveAt(p, s.fuzziness)
}

// ClearWalls removes every user wall, keeping the enclosing ones.
func (s *Session) ClearWalls() {
	s.walls.Reset(s.width, s.height)
	log.Printf("Cleared walls")
}

// RandomizeWalls replaces the user walls with count random ones.
func (s *Session) RandomizeWalls(count int) {
	s.walls.Randomize(s.width, s.height, count, s.rng)
	log.Printf("Generated %d random walls", count)
}

// RandomWallCount returns how many walls RandomizeWalls adds by default.
func (s *Session) RandomWallCount() int {
	return s.randomCount
}

// Boundaries returns every segment, user walls first.
func (s *Session) Boundaries() []raycast.Segment {
	return s.walls.Segments()
}

// WallCount returns the number of user walls.
func (s *Session) WallCount() int {
	return len(s.walls.Walls())
}

// CurrentFrame casts a fresh fan from the current camera state.
func (s *Session) CurrentFrame() raycast.Frame {
	return raycast.CastFrame(s.camera, s.walls.Segments(), s.angleStep, s.projector.MaxDistance)
}

// ProjectedStrips returns the first-person strips for the current state.
func (s *Session) ProjectedStrips() []raycast.Strip {
	return s.projector.Project(s.CurrentFrame())
}

// Project returns the strips for an already cast frame.
func (s *Session) Project(f raycast.Frame) []raycast.Strip {
	return s.projector.Project(f)
}
