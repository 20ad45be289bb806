package raycast

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEnclosing(t *testing.T, b *BoundarySet, width, height float64) {
	t.Helper()
	assert.ElementsMatch(t, []Segment{
		NewSegment(0, 0, 0, height),
		NewSegment(0, 0, width, 0),
		NewSegment(0, height, width, height),
		NewSegment(width, 0, width, height),
	}, b.Bounds())
}

func TestNewBoundarySetHasEnclosingSegments(t *testing.T) {
	b := NewBoundarySet(600, 400)

	assert.Equal(t, 4, b.Len())
	assert.Empty(t, b.Walls())
	assertEnclosing(t, b, 600, 400)
}

func TestAddAndRemove(t *testing.T) {
	b := NewBoundarySet(200, 200)
	w1 := NewSegment(10, 10, 50, 50)
	w2 := NewSegment(60, 10, 60, 90)

	b.Add(w1)
	b.Add(w2)
	b.Add(w1)
	require.Equal(t, 7, b.Len())

	assert.True(t, b.Remove(w1))
	assert.Equal(t, []Segment{w2, w1}, b.Walls(), "only the first equal wall is removed")
	assert.False(t, b.Remove(NewSegment(1, 2, 3, 4)))
}

func TestSegmentsOrder(t *testing.T) {
	b := NewBoundarySet(200, 200)
	w := NewSegment(10, 10, 50, 50)
	b.Add(w)

	segs := b.Segments()
	require.Len(t, segs, 5)
	assert.Equal(t, w, segs[0])
	assert.Equal(t, b.Bounds(), segs[1:])
}

func TestRemoveAt(t *testing.T) {
	b := NewBoundarySet(200, 200)
	wall := NewSegment(20, 20, 120, 120)
	b.Add(wall)

	assert.False(t, b.RemoveAt(Point{105.3553, 34.6447}, DefaultFuzziness), "50 units away removes nothing")
	assert.Len(t, b.Walls(), 1)

	// 5 units off the wall
	assert.True(t, b.RemoveAt(Point{73.5355, 66.4645}, DefaultFuzziness))
	assert.Empty(t, b.Walls())
}

func TestRemoveAtPrefersEarliestWall(t *testing.T) {
	b := NewBoundarySet(200, 200)
	first := NewSegment(100, 0, 100, 150)
	second := NewSegment(104, 0, 104, 150)
	b.Add(first)
	b.Add(second)

	require.True(t, b.RemoveAt(Point{102, 60}, DefaultFuzziness))
	assert.Equal(t, []Segment{second}, b.Walls())
}

func TestRemoveAtNeverRemovesEnclosingSegments(t *testing.T) {
	b := NewBoundarySet(200, 200)

	assert.False(t, b.RemoveAt(Point{0, 100}, DefaultFuzziness))
	assert.Equal(t, 4, b.Len())
}

func TestClearRemovesEverything(t *testing.T) {
	b := NewBoundarySet(200, 200)
	b.Add(NewSegment(1, 1, 2, 2))

	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Segments())
	assert.False(t, b.RemoveAt(Point{1, 1}, DefaultFuzziness))

	b.Add(NewSegment(1, 1, 20, 20))
	assert.True(t, b.RemoveAt(Point{10, 10}, DefaultFuzziness), "index is rebuilt after Clear")
}

func TestResetRestoresBounds(t *testing.T) {
	b := NewBoundarySet(200, 200)
	b.Add(NewSegment(1, 1, 2, 2))

	b.Reset(600, 600)

	assert.Equal(t, 4, b.Len())
	assertEnclosing(t, b, 600, 600)
}

func TestRandomize(t *testing.T) {
	b := NewBoundarySet(10, 10)
	rng := rand.New(rand.NewSource(7))

	b.Randomize(600, 400, 5, rng)

	assert.Equal(t, 9, b.Len())
	assertEnclosing(t, b, 600, 400)
	for _, w := range b.Walls() {
		for _, p := range []Point{w.A, w.B} {
			assert.True(t, p.X >= 0 && p.X <= 600, "x out of bounds: %v", p)
			assert.True(t, p.Y >= 0 && p.Y <= 400, "y out of bounds: %v", p)
		}
	}

	b.Randomize(600, 400, 0, rng)
	assert.Equal(t, 4, b.Len())
}

func TestRandomizeIsDeterministicForSeed(t *testing.T) {
	a := NewBoundarySet(1, 1)
	b := NewBoundarySet(1, 1)

	a.Randomize(600, 600, 5, rand.New(rand.NewSource(42)))
	b.Randomize(600, 600, 5, rand.New(rand.NewSource(42)))

	assert.Equal(t, a.Segments(), b.Segments())
}
