package raycast

import (
	"github.com/pkg/errors"
)

// fanEpsilon absorbs float error so a step landing on the right edge does
// not emit a near-duplicate final ray.
const fanEpsilon = 1e-9

// MaxFanRays bounds the size of a fan; a step that would exceed it yields no rays.
const MaxFanRays = 36000

// Camera is the ray source: a position, a heading and a field of view, all
// angles in degrees. Heading is never wrapped; trig functions handle any value.
type Camera struct {
	Position Point
	Heading  float64
	FOV      float64
}

// NewCamera creates a camera, rejecting a non-positive field of view.
func NewCamera(pos Point, heading, fov float64) (*Camera, error) {
	c := &Camera{Position: pos, Heading: heading}
	if err := c.SetFOV(fov); err != nil {
		return nil, err
	}
	return c, nil
}

// Move advances the camera along its heading. Negative deltas move backward.
func (c *Camera) Move(delta float64) {
	step := Direction(c.Heading).Mul(delta)
	c.Position = pointFromVec(c.Position.vec().Add(step))
}

// Turn rotates the heading by delta degrees.
func (c *Camera) Turn(delta float64) {
	c.Heading += delta
}

// SetFOV replaces the field of view. Values of 180 or more make the fan
// overlap at the seam and should be kept out by the caller's range limits.
func (c *Camera) SetFOV(degrees float64) error {
	if !validPositive(degrees) {
		return errors.Wrapf(ErrInvalidFOV, "fov %v", degrees)
	}
	c.FOV = degrees
	return nil
}

// BuildFan returns a fresh set of rays from the leftmost view direction
// (heading + fov/2) to the rightmost (heading - fov/2), step degrees apart.
// The last step may be shorter so the right edge is always included.
// A step that would produce more than MaxFanRays rays yields an empty fan.
func (c *Camera) BuildFan(step float64) []Ray {
	if !validPositive(step) || !validPositive(c.FOV) {
		return nil
	}
	if c.FOV/step >= MaxFanRays {
		return nil
	}

	left := c.Heading + c.FOV/2
	right := c.Heading - c.FOV/2

	rays := make([]Ray, 0, int(c.FOV/step)+2)
	for k := 0; ; k++ {
		angle := left - float64(k)*step
		if angle <= right+fanEpsilon {
			break
		}
		rays = append(rays, NewRay(c.Position, angle))
	}
	rays = append(rays, NewRay(c.Position, right))

	return rays
}
