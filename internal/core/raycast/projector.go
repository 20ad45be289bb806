package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Projector turns a frame into the pseudo-3D strips of the first-person view.
type Projector struct {
	WallHeight     float64
	MaxDistance    float64
	ViewportWidth  float64
	ViewportHeight float64
}

// NewProjector creates a projector, validating wall height and view distance.
func NewProjector(wallHeight, maxDistance, viewportWidth, viewportHeight float64) (*Projector, error) {
	p := &Projector{ViewportWidth: viewportWidth, ViewportHeight: viewportHeight}
	if err := p.SetWallHeight(wallHeight); err != nil {
		return nil, err
	}
	if err := p.SetMaxDistance(maxDistance); err != nil {
		return nil, err
	}
	return p, nil
}

// SetWallHeight replaces the synthetic wall height.
func (p *Projector) SetWallHeight(h float64) error {
	if !validPositive(h) {
		return errors.Wrapf(ErrInvalidWallHeight, "wall height %v", h)
	}
	p.WallHeight = h
	return nil
}

// SetMaxDistance replaces the maximum view distance.
func (p *Projector) SetMaxDistance(d float64) error {
	if !validPositive(d) {
		return errors.Wrapf(ErrInvalidMaxDistance, "max distance %v", d)
	}
	p.MaxDistance = d
	return nil
}

// FocalLength returns (viewportWidth/2) * tan(fov/2) for a fov in degrees.
func (p *Projector) FocalLength(fov float64) float64 {
	return p.ViewportWidth / 2 * math.Tan(mgl64.DegToRad(fov)/2)
}

// Shade maps a distance to a gray level, 255 at the camera and 0 at MaxDistance.
func (p *Projector) Shade(distance float64) uint8 {
	if p.MaxDistance <= 0 {
		return 0
	}
	return uint8(mgl64.Clamp(255-distance*255/p.MaxDistance, 0, 255))
}

// Project returns one strip per ray, left to right across the viewport.
func (p *Projector) Project(f Frame) []Strip {
	if len(f.Rays) == 0 {
		return nil
	}

	width := p.ViewportWidth / float64(len(f.Rays))
	centerY := p.ViewportHeight / 2
	focal := p.FocalLength(f.FOV)

	strips := make([]Strip, len(f.Rays))
	for i, r := range f.Rays {
		strips[i] = Strip{
			// i is 0-based here; the 1-based position keeps strip i inside [i*width, (i+1)*width]
			CenterX: float64(i+1)*width - width/2,
			CenterY: centerY,
			Width:   width,
			Height:  p.stripHeight(focal, r.Distance),
			Shade:   p.Shade(r.Distance),
		}
	}
	return strips
}

// stripHeight never exceeds the viewport; a wall at zero distance fills it.
func (p *Projector) stripHeight(focal, distance float64) float64 {
	if distance <= 0 {
		return p.ViewportHeight
	}
	return mgl64.Clamp(p.WallHeight*focal/distance, 0, p.ViewportHeight)
}
