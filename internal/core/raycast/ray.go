package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a single probe from the camera position at an absolute angle.
// Hit, HasHit and Distance are filled in by Cast.
type Ray struct {
	Origin   Point
	Angle    float64 // degrees
	Hit      Point
	HasHit   bool
	Distance float64 // corrected distance, maxDistance when nothing is hit
}

// NewRay creates an uncast ray.
func NewRay(origin Point, angle float64) Ray {
	return Ray{Origin: origin, Angle: angle}
}

// Cast finds the closest wall crossing. Distance is measured along the camera
// heading (Euclidean distance times cos(angle - heading)) instead of radially,
// which keeps flat walls flat in the projection.
func (r *Ray) Cast(segments []Segment, heading, maxDistance float64) (Point, bool) {
	dir := Direction(r.Angle)
	correction := math.Cos(mgl64.DegToRad(r.Angle - heading))

	r.Hit = Point{}
	r.HasHit = false
	r.Distance = maxDistance

	for _, seg := range segments {
		point, _, ok := Intersect(r.Origin, dir, seg)
		if !ok {
			continue
		}

		d := correction * Distance(r.Origin, point)
		// Only reachable with a fan of 180 degrees or more
		if d <= 0 {
			continue
		}

		if d < r.Distance {
			r.Hit = point
			r.HasHit = true
			r.Distance = d
		}
	}

	return r.Hit, r.HasHit
}
