package game

import (
	"log"
	"math"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
)

// Held keys fire once, then again after repeatDelay frames and every
// repeatInterval frames after that.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

// keyRepeats reports whether a held key should act this frame.
func (g *Game) keyRepeats(key render.Key) bool {
	if !g.InputMgr.IsKeyPressed(key) {
		delete(g.keyHeld, key)
		return false
	}
	n := g.keyHeld[key]
	g.keyHeld[key] = n + 1
	if n == 0 {
		return true
	}
	return n >= repeatDelay && (n-repeatDelay)%repeatInterval == 0
}

// handleMovement steps and turns the camera from WASD and the mouse wheel.
func (g *Game) handleMovement() {
	c := g.Config.Controls

	if g.keyRepeats(render.KeyW) {
		g.Session.Move(c.MoveStep)
	}
	if g.keyRepeats(render.KeyS) {
		g.Session.Move(-c.MoveStep)
	}
	if g.keyRepeats(render.KeyA) {
		g.Session.Turn(c.TurnStep)
	}
	if g.keyRepeats(render.KeyD) {
		g.Session.Turn(-c.TurnStep)
	}

	if _, dy := g.InputMgr.Wheel(); dy > 0 {
		g.Session.Turn(c.TurnStep)
	} else if dy < 0 {
		g.Session.Turn(-c.TurnStep)
	}
}

// handleSettings adjusts FOV, wall height and view distance within the
// configured limits.
func (g *Game) handleSettings() {
	c := g.Config.Controls
	lim := g.Config.Limits

	if g.keyRepeats(render.KeyUp) {
		g.adjust("fov", lim.FOV, g.Session.Settings().FOV, c.FOVStep, g.Session.SetFOV)
	}
	if g.keyRepeats(render.KeyDown) {
		g.adjust("fov", lim.FOV, g.Session.Settings().FOV, -c.FOVStep, g.Session.SetFOV)
	}
	if g.keyRepeats(render.KeyE) {
		g.adjust("wall height", lim.WallHeight, g.Session.Settings().WallHeight, c.WallHeightStep, g.Session.SetWallHeight)
	}
	if g.keyRepeats(render.KeyQ) {
		g.adjust("wall height", lim.WallHeight, g.Session.Settings().WallHeight, -c.WallHeightStep, g.Session.SetWallHeight)
	}
	if g.keyRepeats(render.KeyRight) {
		g.adjust("max distance", lim.MaxDistance, g.Session.Settings().MaxDistance, c.MaxDistanceStep, g.Session.SetMaxDistance)
	}
	if g.keyRepeats(render.KeyLeft) {
		g.adjust("max distance", lim.MaxDistance, g.Session.Settings().MaxDistance, -c.MaxDistanceStep, g.Session.SetMaxDistance)
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyBackspace) {
		g.Session.ResetSettings()
		g.ShowMessage("View reset")
	}
}

func (g *Game) adjust(name string, r config.Range, current, delta float64, set func(float64) error) {
	v := r.Clamp(current + delta)
	if v == current {
		return
	}
	if err := set(v); err != nil {
		log.Printf("Rejected %s %v: %v", name, v, err)
	}
}

// handleWallKeys switches edit mode and clears or randomizes walls.
func (g *Game) handleWallKeys() {
	if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
		if g.Mode == ModeAdd {
			g.Mode = ModeRemove
		} else {
			g.Mode = ModeAdd
		}
		g.Drag = Drag{}
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyC) {
		g.Session.ClearWalls()
		g.Drag = Drag{}
		g.ShowMessage("Walls cleared")
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.Session.RandomizeWalls(g.Session.RandomWallCount())
		g.Drag = Drag{}
		g.ShowMessage("Walls randomized")
	}
}

// handleMouse adds walls by dragging in add mode and removes the clicked
// wall in remove mode.
func (g *Game) handleMouse() {
	p, inside := g.cursorOnMap()

	switch g.Mode {
	case ModeAdd:
		if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) && inside {
			g.Drag = Drag{Active: true, Start: p, End: p}
			return
		}
		if !g.Drag.Active {
			return
		}
		g.Drag.End = p
		if g.InputMgr.IsMouseButtonJustReleased(render.MouseButtonLeft) ||
			!g.InputMgr.IsMouseButtonPressed(render.MouseButtonLeft) {
			if g.Drag.Start != g.Drag.End {
				g.Session.AddWall(g.Drag.Segment())
			}
			g.Drag = Drag{}
		}

	case ModeRemove:
		if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) && inside {
			if g.Session.RemoveWallAt(p) {
				g.ShowMessage("Wall removed")
			}
		}
	}
}

// cursorOnMap returns the cursor in map coordinates, clamped to the map,
// and whether it was inside the map before clamping.
func (g *Game) cursorOnMap() (raycast.Point, bool) {
	cx, cy := g.InputMgr.GetCursorPosition()
	ox, oy := g.MapOrigin()
	w := float64(g.Config.Layout.MapWidth)
	h := float64(g.Config.Layout.MapHeight)

	x := float64(cx - ox)
	y := float64(cy - oy)
	inside := x >= 0 && x <= w && y >= 0 && y <= h

	return raycast.Point{
		X: math.Max(0, math.Min(w, x)),
		Y: math.Max(0, math.Min(h, y)),
	}, inside
}
