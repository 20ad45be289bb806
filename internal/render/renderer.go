// Package render is the drawing and input surface the game is written
// against. Backends such as render/ebiten implement it; tests use
// render/rendertest.
package render

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// ErrQuit is returned from Game.Update to end the game loop cleanly.
var ErrQuit = errors.New("quit requested")

// Renderer draws primitives onto images.
type Renderer interface {
	NewImage(width, height int) Image

	// Shapes, in pixel coordinates of dst
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// Text
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image is an offscreen texture or the screen itself.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)
	Fill(clr color.Color)
	DrawImage(src Image, opts *DrawImageOptions)
	Dispose()
}

// DrawImageOptions positions a source image on its destination.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM places an image; only translation is needed to lay out the views.
type GeoM interface {
	Translate(tx, ty float64)
}

// NewGeoM is set by the active backend.
var NewGeoM func() GeoM

// InputManager reports keyboard and mouse state for the current frame.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool
	IsMouseButtonJustReleased(button MouseButton) bool
	// Wheel returns the scroll offset since the last frame.
	Wheel() (dx, dy float64)
}

// Key is a keyboard key the ray caster listens to.
type Key int

const (
	KeyW Key = iota // Step forward
	KeyA            // Turn left
	KeyS            // Step back
	KeyD            // Turn right
	KeyQ            // Lower walls
	KeyE            // Raise walls
	KeyC            // Clear walls
	KeyR            // Random walls
	KeyUp           // Widen FOV
	KeyDown         // Narrow FOV
	KeyLeft         // Shorter view distance
	KeyRight        // Longer view distance
	KeyTab          // Toggle add/remove mode
	KeyBackspace    // Reset view parameters
	KeyEscape       // Quit
)

// MouseButton is a mouse button. Only the left button edits walls.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
)

// Game is driven by an Engine once per tick.
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)
	// RunGame blocks until the window closes or Update returns ErrQuit.
	RunGame(game Game) error
}
