package game

import (
	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/ui/hud"
)

// Game drives a Session from keyboard and mouse input and draws it as a
// top-down map next to a first-person view.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Session      *Session
	Config       *config.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager

	// Offscreen targets for the two views
	MapTexture    render.Image
	ViewerTexture render.Image

	// HUD
	GameHUD *hud.HUD

	// Editing state
	Mode EditMode
	Drag Drag

	// UI state
	Messages []Message
	keyHeld  map[render.Key]int

	// Debug
	FrameCount int
}

// New creates a game around an existing session.
func New(session *Session, cfg *config.Config, r render.Renderer, input render.InputManager) *Game {
	g := &Game{
		ScreenWidth:  cfg.Layout.WindowWidth,
		ScreenHeight: cfg.Layout.WindowHeight,
		Session:      session,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		keyHeld:      make(map[render.Key]int),
	}
	g.GameHUD = hud.New(r, hud.DefaultConfig(), g.ScreenWidth, g.ScreenHeight)
	return g
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0

	g.updateMessages(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	g.handleMovement()
	g.handleSettings()
	g.handleWallKeys()
	g.handleMouse()

	g.FrameCount++
	return nil
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// MapOrigin returns the screen position of the top-down map.
func (g *Game) MapOrigin() (x, y int) {
	s := g.Config.Layout.Spacing
	return s, s
}

// ViewerOrigin returns the screen position of the first-person view.
func (g *Game) ViewerOrigin() (x, y int) {
	l := g.Config.Layout
	return l.Spacing + l.MapWidth + l.Spacing, l.Spacing
}

// HUDStatus collects the values the HUD shows.
func (g *Game) HUDStatus() hud.Status {
	s := g.Session.Settings()
	return hud.Status{
		FOV:         s.FOV,
		WallHeight:  s.WallHeight,
		MaxDistance: s.MaxDistance,
		Mode:        g.Mode.String(),
		Walls:       g.Session.WallCount(),
	}
}

// updateMessages decrements message timers and removes expired ones.
func (g *Game) updateMessages(dt float64) {
	active := g.Messages[:0]
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage displays a message on screen for a short time.
func (g *Game) ShowMessage(text string) {
	duration := 2.0
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: duration,
		MaxTime:  duration,
	})
	// Keep only the latest few messages
	if len(g.Messages) > 3 {
		g.Messages = g.Messages[len(g.Messages)-3:]
	}
}
