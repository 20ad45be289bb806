package raycast

import (
	"math/rand"

	"github.com/dhconnelly/rtreego"
)

// indexPad keeps index boxes of axis-aligned walls from collapsing to zero
// width and makes box contact count as overlap.
const indexPad = 1e-9

// wallEntry is a user wall as stored in the spatial index.
type wallEntry struct {
	seg Segment
	seq uint64
	box rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *wallEntry) Bounds() rtreego.Rect {
	return e.box
}

// BoundarySet holds the user walls plus the four segments enclosing the play
// area. Hit-test removal only ever touches user walls.
type BoundarySet struct {
	walls  []*wallEntry
	bounds []Segment
	index  *rtreego.Rtree
	seq    uint64
}

// NewBoundarySet creates a set enclosed by [0,width]x[0,height].
func NewBoundarySet(width, height float64) *BoundarySet {
	b := &BoundarySet{}
	b.Reset(width, height)
	return b
}

// Add appends a user wall.
func (b *BoundarySet) Add(seg Segment) {
	b.seq++
	e := &wallEntry{seg: seg, seq: b.seq, box: segmentBox(seg)}
	b.walls = append(b.walls, e)
	b.tree().Insert(e)
}

// Remove deletes the first user wall equal to seg.
func (b *BoundarySet) Remove(seg Segment) bool {
	for i, e := range b.walls {
		if e.seg == seg {
			b.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveAt deletes the earliest added user wall within fuzziness of p.
func (b *BoundarySet) RemoveAt(p Point, fuzziness float64) bool {
	query := rtreego.Point{p.X, p.Y}.ToRect(fuzziness + indexPad)

	var found *wallEntry
	for _, obj := range b.tree().SearchIntersect(query) {
		e := obj.(*wallEntry)
		if found != nil && e.seq > found.seq {
			continue
		}
		if Contains(e.seg, p, fuzziness) {
			found = e
		}
	}
	if found == nil {
		return false
	}

	for i, e := range b.walls {
		if e == found {
			b.removeAt(i)
			return true
		}
	}
	return false
}

func (b *BoundarySet) removeAt(i int) {
	e := b.walls[i]
	b.walls = append(b.walls[:i], b.walls[i+1:]...)
	b.tree().Delete(e)
}

// Clear removes every segment, the enclosing ones included.
func (b *BoundarySet) Clear() {
	b.walls = nil
	b.bounds = nil
	b.index = nil
}

// Reset clears the set and re-adds the enclosing segments of [0,width]x[0,height].
func (b *BoundarySet) Reset(width, height float64) {
	b.Clear()
	b.bounds = []Segment{
		NewSegment(0, 0, 0, height),
		NewSegment(0, 0, width, 0),
		NewSegment(0, height, width, height),
		NewSegment(width, 0, width, height),
	}
}

// Randomize resets the set and adds count walls with endpoints drawn
// uniformly inside the bounds. A nil rng uses the global source.
func (b *BoundarySet) Randomize(width, height float64, count int, rng *rand.Rand) {
	b.Reset(width, height)

	next := rand.Float64
	if rng != nil {
		next = rng.Float64
	}
	for i := 0; i < count; i++ {
		b.Add(NewSegment(next()*width, next()*height, next()*width, next()*height))
	}
}

// Segments returns the user walls in insertion order followed by the
// enclosing segments. The slice is a copy.
func (b *BoundarySet) Segments() []Segment {
	segs := make([]Segment, 0, len(b.walls)+len(b.bounds))
	for _, e := range b.walls {
		segs = append(segs, e.seg)
	}
	return append(segs, b.bounds...)
}

// Walls returns the user walls in insertion order.
func (b *BoundarySet) Walls() []Segment {
	segs := make([]Segment, len(b.walls))
	for i, e := range b.walls {
		segs[i] = e.seg
	}
	return segs
}

// Bounds returns the enclosing segments.
func (b *BoundarySet) Bounds() []Segment {
	return append([]Segment(nil), b.bounds...)
}

// Len returns the total number of segments.
func (b *BoundarySet) Len() int {
	return len(b.walls) + len(b.bounds)
}

func (b *BoundarySet) tree() *rtreego.Rtree {
	if b.index == nil {
		b.index = rtreego.NewTree(2, 2, 8)
	}
	return b.index
}

func segmentBox(seg Segment) rtreego.Rect {
	minX, maxX := seg.A.X, seg.B.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := seg.A.Y, seg.B.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	box, err := rtreego.NewRect(
		rtreego.Point{minX - indexPad, minY - indexPad},
		[]float64{maxX - minX + 2*indexPad, maxY - minY + 2*indexPad},
	)
	if err != nil {
		// Non-finite coordinates; such a wall can never be hit-tested anyway
		return rtreego.Point{0, 0}.ToRect(indexPad)
	}
	return box
}
