package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultFuzziness is the hit-test tolerance used when removing walls.
const DefaultFuzziness = 10.0

func (p Point) vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

func pointFromVec(v mgl64.Vec2) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// Direction returns the unit vector for an angle in degrees. Screen y grows
// downward, so positive angles turn toward negative y.
func Direction(degrees float64) mgl64.Vec2 {
	rad := mgl64.DegToRad(degrees)
	return mgl64.Vec2{math.Cos(rad), -math.Sin(rad)}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return b.vec().Sub(a.vec()).Len()
}

func cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Intersect checks if the ray origin + t*dir (t > 0) crosses the open segment
// A + u*(B-A) with 0 < u < 1. Endpoints do not count, so two walls sharing a
// corner never produce a double hit. Returns the point and the ray parameter t.
func Intersect(origin Point, dir mgl64.Vec2, seg Segment) (Point, float64, bool) {
	edge := seg.B.vec().Sub(seg.A.vec())

	den := cross(dir, edge)
	if den == 0 {
		// Parallel, or a zero-length segment
		return Point{}, 0, false
	}

	w := seg.A.vec().Sub(origin.vec())
	t := cross(w, edge) / den
	u := cross(w, dir) / den

	if t > 0 && u > 0 && u < 1 {
		return pointFromVec(seg.A.vec().Add(edge.Mul(u))), t, true
	}
	return Point{}, 0, false
}

// Contains reports whether p lies within fuzziness of seg. The segment's
// bounding box, grown by fuzziness, rejects far points first; axis-aligned
// segments are accepted as soon as the box test passes.
func Contains(seg Segment, p Point, fuzziness float64) bool {
	left, right := seg.A, seg.B
	if left.X > right.X {
		left, right = right, left
	}

	if p.X+fuzziness < left.X || right.X < p.X-fuzziness {
		return false
	}
	if p.Y+fuzziness < math.Min(left.Y, right.Y) || math.Max(left.Y, right.Y) < p.Y-fuzziness {
		return false
	}

	edge := right.vec().Sub(left.vec())
	if edge.X() == 0 || edge.Y() == 0 {
		return true
	}

	offset := math.Abs(cross(edge, p.vec().Sub(left.vec()))) / edge.Len()
	return offset <= fuzziness
}

func isNaNOrInf(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
