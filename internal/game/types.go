package game

import (
	"chosenoffset.com/raycaster/internal/core/raycast"
)

// EditMode selects what a click on the map does.
type EditMode int

const (
	ModeAdd    EditMode = iota // Drag to add a wall
	ModeRemove                 // Click to remove the wall under the cursor
)

// String returns the label shown in the HUD.
func (m EditMode) String() string {
	switch m {
	case ModeRemove:
		return "Remove"
	default:
		return "Add"
	}
}

// Drag tracks a wall being drawn in add mode.
type Drag struct {
	Active     bool
	Start, End raycast.Point
}

// Segment returns the wall the drag would add.
func (d Drag) Segment() raycast.Segment {
	return raycast.Segment{A: d.Start, B: d.End}
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
