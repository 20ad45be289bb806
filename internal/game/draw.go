package game

import (
	"image/color"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
)

var (
	backgroundColor = color.RGBA{30, 30, 30, 255}
	mapColor        = color.RGBA{0, 0, 0, 255}
	wallColor       = color.RGBA{255, 255, 255, 255}
	rayColor        = color.RGBA{255, 255, 255, 40}
	previewColor    = color.RGBA{128, 128, 128, 255}
	cameraColor     = color.RGBA{255, 0, 0, 255}
	floorColor      = color.RGBA{40, 40, 40, 255}
	crosshairColor  = color.RGBA{255, 0, 0, 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	l := g.Config.Layout

	// Ensure render textures exist and are the right size
	g.MapTexture = g.ensureTexture(g.MapTexture, l.MapWidth, l.MapHeight)
	g.ViewerTexture = g.ensureTexture(g.ViewerTexture, l.ViewerWidth, l.ViewerHeight)

	// Both views come from the same frame
	frame := g.Session.CurrentFrame()

	screen.Fill(backgroundColor)

	g.drawMap(g.MapTexture, frame)
	g.drawViewer(g.ViewerTexture, g.Session.Project(frame))

	mx, my := g.MapOrigin()
	g.blit(screen, g.MapTexture, mx, my)
	vx, vy := g.ViewerOrigin()
	g.blit(screen, g.ViewerTexture, vx, vy)

	g.drawHUD(screen)
	g.drawMessages(screen)
}

func (g *Game) ensureTexture(img render.Image, w, h int) render.Image {
	if img != nil && !needsResize(img, w, h) {
		return img
	}
	if img != nil {
		img.Dispose()
	}
	return g.Renderer.NewImage(w, h)
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}

func (g *Game) blit(dst, src render.Image, x, y int) {
	op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(src, op)
}

// drawMap draws the top-down view: rays, walls, the wall being dragged and
// the camera.
func (g *Game) drawMap(dst render.Image, frame raycast.Frame) {
	dst.Fill(mapColor)

	for _, ray := range frame.Lines() {
		g.strokeSegment(dst, ray, 1, rayColor)
	}

	for _, wall := range g.Session.Boundaries() {
		g.strokeSegment(dst, wall, 2, wallColor)
	}

	if g.Drag.Active {
		g.strokeSegment(dst, g.Drag.Segment(), 2, previewColor)
	}

	g.Renderer.FillCircle(dst, float32(frame.Origin.X), float32(frame.Origin.Y), 4, cameraColor)
}

func (g *Game) strokeSegment(dst render.Image, s raycast.Segment, width float32, clr color.Color) {
	g.Renderer.StrokeLine(dst, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), width, clr)
}

// drawViewer draws the first-person view: floor, one shaded strip per ray and
// a crosshair.
func (g *Game) drawViewer(dst render.Image, strips []raycast.Strip) {
	dst.Fill(mapColor)

	w, h := dst.Size()
	g.Renderer.FillRect(dst, 0, float32(h)/2, float32(w), float32(h)/2, floorColor)

	for _, s := range strips {
		x, y, sw, sh := s.Rect()
		shade := color.RGBA{s.Shade, s.Shade, s.Shade, 255}
		g.Renderer.FillRect(dst, float32(x), float32(y), float32(sw), float32(sh), shade)
	}

	// Red '+' in the center
	g.Renderer.FillRect(dst, float32(w-6)/2, float32(h-20)/2, 3, 17, crosshairColor)
	g.Renderer.FillRect(dst, float32(w-20)/2, float32(h-6)/2, 17, 3, crosshairColor)
}

func (g *Game) drawHUD(screen render.Image) {
	if g.GameHUD == nil {
		return
	}
	g.GameHUD.SetStatus(g.HUDStatus())
	g.GameHUD.Draw(screen)
}

// drawMessages draws the fading messages below the first-person view.
func (g *Game) drawMessages(screen render.Image) {
	vx, vy := g.ViewerOrigin()
	y := vy + g.Config.Layout.ViewerHeight + 10
	for _, msg := range g.Messages {
		alpha := uint8(255 * msg.TimeLeft / msg.MaxTime)
		g.Renderer.DrawText(screen, msg.Text, vx, y, color.RGBA{255, 255, 200, alpha}, 1)
		y += 16
	}
}
