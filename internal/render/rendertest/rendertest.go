// Package rendertest provides in-memory render.Renderer and
// render.InputManager implementations that record what they are asked to do.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/raycaster/internal/render"
)

var (
	_ render.Renderer     = (*Renderer)(nil)
	_ render.Image        = (*Image)(nil)
	_ render.GeoM         = (*GeoM)(nil)
	_ render.InputManager = (*Input)(nil)
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// Op names recorded by Renderer.
const (
	OpFillRect   = "fill_rect"
	OpStrokeLine = "stroke_line"
	OpFillCircle = "fill_circle"
	OpText       = "text"
)

// Call is one recorded drawing call.
type Call struct {
	Op     string
	Target *Image
	Coords []float32 // x, y then size or end point, depending on Op
	Text   string
	Color  color.Color
}

// Renderer records every drawing call.
type Renderer struct {
	Calls  []Call
	Images []*Image
}

// NewRenderer returns an empty recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) record(op string, dst render.Image, clr color.Color, text string, coords ...float32) {
	img, _ := dst.(*Image)
	r.Calls = append(r.Calls, Call{Op: op, Target: img, Coords: coords, Text: text, Color: clr})
}

// NewImage creates a new image with the given dimensions.
func (r *Renderer) NewImage(width, height int) render.Image {
	img := NewImage(width, height)
	r.Images = append(r.Images, img)
	return img
}

// FillRect records a filled rectangle.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.record(OpFillRect, dst, clr, "", x, y, width, height)
}

// StrokeLine records a line.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	r.record(OpStrokeLine, dst, clr, "", x0, y0, x1, y1)
}

// FillCircle records a filled circle.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.record(OpFillCircle, dst, clr, "", x, y, radius)
}

// DrawText records a text draw.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.record(OpText, dst, clr, text, float32(x), float32(y))
}

// MeasureText uses the same 6x16 cell as the debug font.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len(text)) * 6 * scale), int(16 * scale)
}

// Ops returns the calls with the given op, in order.
func (r *Renderer) Ops(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns every drawn string, in order.
func (r *Renderer) Texts() []string {
	var out []string
	for _, c := range r.Ops(OpText) {
		out = append(out, c.Text)
	}
	return out
}

// Image is an in-memory image that remembers its fill and what was drawn onto it.
type Image struct {
	W, H     int
	FillClr  color.Color
	Drawn    []*Image
	Offsets  [][2]float64
	Disposed bool
}

// NewImage creates an image of the given size.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

// Bounds returns the bounds of the image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.W, i.H)
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.W, i.H
}

// Fill remembers clr.
func (i *Image) Fill(clr color.Color) {
	i.FillClr = clr
}

// DrawImage records src and its translation.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	img, _ := src.(*Image)
	var off [2]float64
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			off = [2]float64{g.TX, g.TY}
		}
	}
	i.Drawn = append(i.Drawn, img)
	i.Offsets = append(i.Offsets, off)
}

// Dispose marks the image as released.
func (i *Image) Dispose() {
	i.Disposed = true
}

// GeoM tracks a translation.
type GeoM struct {
	TX, TY float64
}

// Translate shifts by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

// Input is a scripted input manager. Tests set the fields before each Update
// and call EndFrame to clear the one-frame states.
type Input struct {
	Held        map[render.Key]bool
	JustPressed map[render.Key]bool
	Buttons     map[render.MouseButton]bool
	ButtonsDown map[render.MouseButton]bool
	ButtonsUp   map[render.MouseButton]bool
	CursorX     int
	CursorY     int
	WheelX      float64
	WheelY      float64
}

// NewInput returns an input manager with nothing pressed.
func NewInput() *Input {
	return &Input{
		Held:        map[render.Key]bool{},
		JustPressed: map[render.Key]bool{},
		Buttons:     map[render.MouseButton]bool{},
		ButtonsDown: map[render.MouseButton]bool{},
		ButtonsUp:   map[render.MouseButton]bool{},
	}
}

// Press marks key as held and just pressed.
func (in *Input) Press(key render.Key) {
	in.Held[key] = true
	in.JustPressed[key] = true
}

// Release lets go of key.
func (in *Input) Release(key render.Key) {
	delete(in.Held, key)
	delete(in.JustPressed, key)
}

// MouseDown presses button at (x, y).
func (in *Input) MouseDown(button render.MouseButton, x, y int) {
	in.CursorX, in.CursorY = x, y
	in.Buttons[button] = true
	in.ButtonsDown[button] = true
}

// MouseUp releases button at (x, y).
func (in *Input) MouseUp(button render.MouseButton, x, y int) {
	in.CursorX, in.CursorY = x, y
	delete(in.Buttons, button)
	in.ButtonsUp[button] = true
}

// EndFrame clears everything that only lasts one frame.
func (in *Input) EndFrame() {
	in.JustPressed = map[render.Key]bool{}
	in.ButtonsDown = map[render.MouseButton]bool{}
	in.ButtonsUp = map[render.MouseButton]bool{}
	in.WheelX, in.WheelY = 0, 0
}

// IsKeyPressed reports whether key is held.
func (in *Input) IsKeyPressed(key render.Key) bool { return in.Held[key] }

// IsKeyJustPressed reports whether key went down this frame.
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustPressed[key] }

// GetCursorPosition returns the scripted cursor.
func (in *Input) GetCursorPosition() (x, y int) { return in.CursorX, in.CursorY }

// IsMouseButtonPressed reports whether button is held.
func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool { return in.Buttons[button] }

// IsMouseButtonJustPressed reports whether button went down this frame.
func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return in.ButtonsDown[button]
}

// IsMouseButtonJustReleased reports whether button went up this frame.
func (in *Input) IsMouseButtonJustReleased(button render.MouseButton) bool {
	return in.ButtonsUp[button]
}

// Wheel returns the scripted wheel offset.
func (in *Input) Wheel() (dx, dy float64) { return in.WheelX, in.WheelY }
