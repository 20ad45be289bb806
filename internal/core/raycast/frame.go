package raycast

// Frame is one cast of the camera's fan, rays ordered left to right as they
// appear on screen.
type Frame struct {
	Origin  Point
	Heading float64
	FOV     float64
	Rays    []Ray
}

// CastFrame rebuilds the camera's fan and casts every ray against segments.
func CastFrame(c *Camera, segments []Segment, step, maxDistance float64) Frame {
	rays := c.BuildFan(step)
	for i := range rays {
		rays[i].Cast(segments, c.Heading, maxDistance)
	}

	return Frame{
		Origin:  c.Position,
		Heading: c.Heading,
		FOV:     c.FOV,
		Rays:    rays,
	}
}

// Lines returns the top-down segments from the camera to each hit point.
// Rays without a hit are left out.
func (f Frame) Lines() []Segment {
	lines := make([]Segment, 0, len(f.Rays))
	for _, r := range f.Rays {
		if r.HasHit {
			lines = append(lines, Segment{A: r.Origin, B: r.Hit})
		}
	}
	return lines
}
