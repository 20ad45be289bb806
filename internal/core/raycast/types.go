// Package raycast implements the geometric core of the ray caster: the wall
// set, the camera and its ray fan, ray/segment intersection with fisheye
// correction, and the projection of a cast frame into shaded strips.
package raycast

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Segment represents a wall between two points
type Segment struct {
	A, B Point
}

// NewSegment creates a segment from raw coordinates
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Point{X: x1, Y: y1}, B: Point{X: x2, Y: y2}}
}

// Strip is one shaded, vertically centered rectangle of the projected view
type Strip struct {
	CenterX, CenterY float64
	Width, Height    float64
	Shade            uint8 // 255 = fully lit, 0 = floor colored
}

// Rect returns the top-left corner and size of the strip.
func (s Strip) Rect() (x, y, w, h float64) {
	return s.CenterX - s.Width/2, s.CenterY - s.Height/2, s.Width, s.Height
}
