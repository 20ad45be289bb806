package raycast

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraRejectsInvalidFOV(t *testing.T) {
	for _, fov := range []float64{0, -30, math.NaN(), math.Inf(1)} {
		_, err := NewCamera(Point{}, 0, fov)
		require.Error(t, err)
		assert.Equal(t, ErrInvalidFOV, errors.Cause(err))
	}
}

func TestSetFOVKeepsOldValueOnError(t *testing.T) {
	c, err := NewCamera(Point{}, 0, 60)
	require.NoError(t, err)

	err = c.SetFOV(-1)
	assert.True(t, errors.Is(err, ErrInvalidFOV))
	assert.Equal(t, 60.0, c.FOV)
}

func TestMoveFollowsHeading(t *testing.T) {
	c, err := NewCamera(Point{100, 100}, 0, 60)
	require.NoError(t, err)

	c.Move(5)
	assert.InDelta(t, 105, c.Position.X, 1e-9)
	assert.InDelta(t, 100, c.Position.Y, 1e-9)

	c.Turn(90)
	c.Move(10)
	assert.InDelta(t, 105, c.Position.X, 1e-9)
	assert.InDelta(t, 90, c.Position.Y, 1e-9, "positive angles move toward smaller y")

	c.Move(-10)
	assert.InDelta(t, 100, c.Position.Y, 1e-9)
}

func TestTurnDoesNotWrap(t *testing.T) {
	c, err := NewCamera(Point{}, 355, 60)
	require.NoError(t, err)

	c.Turn(10)
	assert.Equal(t, 365.0, c.Heading)
}

func TestBuildFanOrderAndBounds(t *testing.T) {
	c, err := NewCamera(Point{100, 100}, 0, 60)
	require.NoError(t, err)

	rays := c.BuildFan(0.2)

	require.Len(t, rays, 301)
	assert.Equal(t, 30.0, rays[0].Angle)
	assert.Equal(t, -30.0, rays[len(rays)-1].Angle)
	assert.Equal(t, 0.0, rays[150].Angle)
	for i := 1; i < len(rays); i++ {
		assert.Less(t, rays[i].Angle, rays[i-1].Angle, "rays must go left to right")
		assert.Equal(t, c.Position, rays[i].Origin)
	}
}

func TestBuildFanShortLastStep(t *testing.T) {
	c, err := NewCamera(Point{}, 10, 25)
	require.NoError(t, err)

	rays := c.BuildFan(10)

	angles := make([]float64, len(rays))
	for i, r := range rays {
		angles[i] = r.Angle
	}
	assert.Equal(t, []float64{22.5, 12.5, 2.5, -2.5}, angles)
}

func TestBuildFanIsIdempotent(t *testing.T) {
	c, err := NewCamera(Point{42, 17}, 123.4, 75)
	require.NoError(t, err)

	first := c.BuildFan(0.2)
	second := c.BuildFan(0.2)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Angle, second[i].Angle)
	}
}

func TestBuildFanRejectsBadStep(t *testing.T) {
	c, err := NewCamera(Point{}, 0, 60)
	require.NoError(t, err)

	assert.Empty(t, c.BuildFan(0))
	assert.Empty(t, c.BuildFan(-1))
}

func TestBuildFanRejectsOversizedFan(t *testing.T) {
	c, err := NewCamera(Point{}, 0, 60)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.Empty(t, c.BuildFan(1e-20))
	})
	assert.Empty(t, c.BuildFan(1e-9))
	assert.Empty(t, c.BuildFan(60.0/(2*MaxFanRays)))

	assert.Len(t, c.BuildFan(0.01), 6001)
}
