package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/raycast"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultConfig(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return s
}

func TestNewSessionStartsWithRandomWalls(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, 5, s.WallCount())
	assert.Len(t, s.Boundaries(), 5+4)

	cam := s.Camera()
	assert.Equal(t, raycast.Point{X: 130, Y: 240}, cam.Position)
	assert.Equal(t, 0.0, cam.Heading)
	assert.Equal(t, 60.0, cam.FOV)
	assert.Equal(t, Settings{FOV: 60, MaxDistance: 850, WallHeight: 200}, s.Settings())
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Camera.FOV = 0

	s, err := NewSession(cfg, nil)
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestSessionSettersRejectInvalidValues(t *testing.T) {
	s := newTestSession(t)

	err := s.SetFOV(0)
	assert.Equal(t, raycast.ErrInvalidFOV, errors.Cause(err))
	err = s.SetMaxDistance(-1)
	assert.Equal(t, raycast.ErrInvalidMaxDistance, errors.Cause(err))
	err = s.SetWallHeight(math.Inf(1))
	assert.Equal(t, raycast.ErrInvalidWallHeight, errors.Cause(err))

	assert.Equal(t, s.DefaultSettings(), s.Settings())
}

func TestSessionResetSettings(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.SetFOV(90))
	require.NoError(t, s.SetMaxDistance(300))
	require.NoError(t, s.SetWallHeight(50))
	assert.Equal(t, Settings{FOV: 90, MaxDistance: 300, WallHeight: 50}, s.Settings())

	s.ResetSettings()
	assert.Equal(t, Settings{FOV: 60, MaxDistance: 850, WallHeight: 200}, s.Settings())
}

func TestSessionCameraIsACopy(t *testing.T) {
	s := newTestSession(t)

	cam := s.Camera()
	cam.Position.X = 999
	cam.Heading = 45

	assert.Equal(t, 130.0, s.Camera().Position.X)
	assert.Equal(t, 0.0, s.Camera().Heading)
}

func TestSessionMoveAndTurn(t *testing.T) {
	s := newTestSession(t)

	s.Move(10)
	assert.InDelta(t, 140, s.Camera().Position.X, 1e-9)
	assert.InDelta(t, 240, s.Camera().Position.Y, 1e-9)

	s.Turn(90)
	s.Move(10)
	assert.InDelta(t, 140, s.Camera().Position.X, 1e-9)
	assert.InDelta(t, 230, s.Camera().Position.Y, 1e-9, "heading 90 moves up the screen")
}

func TestSessionClearAndRandomizeWalls(t *testing.T) {
	s := newTestSession(t)

	s.ClearWalls()
	assert.Equal(t, 0, s.WallCount())
	assert.Len(t, s.Boundaries(), 4)

	s.RandomizeWalls(3)
	assert.Equal(t, 3, s.WallCount())
	assert.Len(t, s.Boundaries(), 7)

	for _, seg := range s.Boundaries() {
		for _, p := range []raycast.Point{seg.A, seg.B} {
			assert.True(t, p.X >= 0 && p.X <= 600 && p.Y >= 0 && p.Y <= 600, "wall endpoint %v out of bounds", p)
		}
	}
}

func TestSessionAddAndRemoveWall(t *testing.T) {
	s := newTestSession(t)
	s.ClearWalls()

	wall := raycast.NewSegment(300, 100, 300, 400)
	s.AddWall(wall)
	assert.Equal(t, wall, s.Boundaries()[0])

	assert.False(t, s.RemoveWallAt(raycast.Point{X: 350, Y: 250}))
	assert.True(t, s.RemoveWallAt(raycast.Point{X: 305, Y: 250}))
	assert.Equal(t, 0, s.WallCount())

	// The enclosing walls are never removed by a click.
	assert.False(t, s.RemoveWallAt(raycast.Point{X: 0, Y: 300}))
	assert.Len(t, s.Boundaries(), 4)
}

func TestSessionCurrentFrameInEmptyRoom(t *testing.T) {
	s := newTestSession(t)
	s.ClearWalls()

	frame := s.CurrentFrame()
	require.Len(t, frame.Rays, 301)
	assert.Equal(t, 30.0, frame.Rays[0].Angle)
	assert.Equal(t, -30.0, frame.Rays[300].Angle)

	center := frame.Rays[150]
	assert.Equal(t, 0.0, center.Angle)
	require.True(t, center.HasHit)
	assert.InDelta(t, 600, center.Hit.X, 1e-9)
	assert.InDelta(t, 240, center.Hit.Y, 1e-9)
	assert.InDelta(t, 470, center.Distance, 1e-9)

	for i, r := range frame.Rays {
		assert.True(t, r.HasHit, "ray %d should hit the enclosing walls", i)
	}
	assert.Len(t, frame.Lines(), 301)
}

func TestSessionProjectedStrips(t *testing.T) {
	s := newTestSession(t)
	s.ClearWalls()

	strips := s.ProjectedStrips()
	require.Len(t, strips, 301)

	width := 602.0 / 301
	focal := 301 * math.Tan(math.Pi/6)
	center := strips[150]
	assert.InDelta(t, 151*width-width/2, center.CenterX, 1e-9)
	assert.InDelta(t, 200, center.CenterY, 1e-9)
	assert.InDelta(t, 200*focal/470, center.Height, 1e-9)
	assert.Equal(t, uint8(114), center.Shade)

	assert.Equal(t, strips, s.Project(s.CurrentFrame()))
}

func TestSessionMaxDistanceHidesFarWalls(t *testing.T) {
	s := newTestSession(t)
	s.ClearWalls()
	require.NoError(t, s.SetMaxDistance(100))

	frame := s.CurrentFrame()
	for _, r := range frame.Rays {
		assert.False(t, r.HasHit)
		assert.Equal(t, 100.0, r.Distance)
	}
	assert.Empty(t, frame.Lines())

	for _, strip := range s.ProjectedStrips() {
		assert.Equal(t, uint8(0), strip.Shade)
	}
}
