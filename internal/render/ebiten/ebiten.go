// Package ebiten implements the render interfaces on top of Ebitengine.
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"chosenoffset.com/raycaster/internal/render"
)

// Debug font cell size in pixels
const (
	glyphWidth  = 6
	glyphHeight = 16
)

func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// EbitenRenderer draws with the vector package and the debug font.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

func target(dst render.Image) *ebiten.Image {
	return dst.(*EbitenImage).img
}

// NewImage allocates an offscreen texture.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// FillRect skips empty rectangles; strips of zero height are common.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	vector.FillRect(target(dst), x, y, width, height, clr, false)
}

// StrokeLine draws an anti-aliased segment.
func (r *EbitenRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(target(dst), x0, y0, x1, y1, strokeWidth, clr, true)
}

// FillCircle draws an anti-aliased disc.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(target(dst), x, y, radius, clr, true)
}

// DrawText prints with the debug font, which is always white; clr and scale
// only matter to MeasureText callers laying out panels.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	ebitenutil.DebugPrintAt(target(dst), str, x, y)
}

// MeasureText estimates the size of str in the debug font.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	return int(float64(len(str)*glyphWidth) * scale), int(glyphHeight * scale)
}

// EbitenImage adapts *ebiten.Image to render.Image.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the image rectangle.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns width and height in pixels.
func (i *EbitenImage) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints the whole image.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Dispose frees the texture.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawImage composites src, translated by opts.GeoM when given.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	op := &ebiten.DrawImageOptions{}
	if opts != nil {
		if g, ok := opts.GeoM.(*EbitenGeoM); ok {
			op.GeoM = g.geoM
		}
	}
	i.img.DrawImage(target(src), op)
}

// EbitenGeoM adapts ebiten.GeoM to render.GeoM.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM returns an identity transform.
func NewGeoM() render.GeoM {
	return &EbitenGeoM{}
}

// Translate shifts by (tx, ty).
func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// EbitenInputManager reads Ebitengine's input state.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// ebitenKeys maps every render.Key to its Ebitengine key.
var ebitenKeys = map[render.Key]ebiten.Key{
	render.KeyW:         ebiten.KeyW,
	render.KeyA:         ebiten.KeyA,
	render.KeyS:         ebiten.KeyS,
	render.KeyD:         ebiten.KeyD,
	render.KeyQ:         ebiten.KeyQ,
	render.KeyE:         ebiten.KeyE,
	render.KeyC:         ebiten.KeyC,
	render.KeyR:         ebiten.KeyR,
	render.KeyUp:        ebiten.KeyArrowUp,
	render.KeyDown:      ebiten.KeyArrowDown,
	render.KeyLeft:      ebiten.KeyArrowLeft,
	render.KeyRight:     ebiten.KeyArrowRight,
	render.KeyTab:       ebiten.KeyTab,
	render.KeyBackspace: ebiten.KeyBackspace,
	render.KeyEscape:    ebiten.KeyEscape,
}

// IsKeyPressed reports whether key is held.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	k, ok := ebitenKeys[key]
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed reports whether key went down this tick.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := ebitenKeys[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

// GetCursorPosition returns the cursor in screen pixels.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonPressed reports whether the left button is held.
func (m *EbitenInputManager) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// IsMouseButtonJustPressed reports whether the left button went down this tick.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// IsMouseButtonJustReleased reports whether the left button went up this tick.
func (m *EbitenInputManager) IsMouseButtonJustReleased(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// Wheel returns this tick's scroll offset.
func (m *EbitenInputManager) Wheel() (dx, dy float64) {
	return ebiten.Wheel()
}

// EbitenEngine runs a render.Game in an Ebitengine window.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	mode := ebiten.WindowResizingModeDisabled
	if resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}

// RunGame blocks until the window closes. render.ErrQuit from Update ends
// the loop without an error.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter lets a render.Game run as an ebiten.Game.
type gameAdapter struct {
	game render.Game
}

func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
