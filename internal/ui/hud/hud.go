// Package hud draws the read-outs that sit next to the first-person view:
// the current view parameters, the edit mode, the wall count and the key help.
package hud

import (
	"fmt"
	"image/color"
	"strconv"

	"chosenoffset.com/raycaster/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowSettings bool    // Show FOV, wall height and view distance
	ShowEditInfo bool    // Show edit mode and wall count
	ShowHelp     bool    // Show key bindings
	Position     string  // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64 // Background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowSettings: true,
		ShowEditInfo: true,
		ShowHelp:     true,
		Position:     "bottom-right",
		Opacity:      0.7,
	}
}

// Status is the data shown by the HUD.
type Status struct {
	FOV         float64 // Degrees
	WallHeight  float64 // Map units
	MaxDistance float64 // Map units
	Mode        string
	Walls       int
}

// Line is a single row of HUD text.
type Line struct {
	Text  string
	Color color.RGBA
}

var (
	labelColor = color.RGBA{220, 220, 220, 255}
	modeColor  = color.RGBA{255, 255, 200, 255}
	helpColor  = color.RGBA{150, 150, 150, 255}
)

var helpLines = []string{
	"W/S move  A/D turn",
	"Up/Down FOV  Q/E height",
	"Left/Right distance",
	"Tab mode  C clear  R random",
}

const (
	lineHeight = 14
	padding    = 10
)

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	status Status

	// Cached layout
	panelWidth  int
	panelHeight int
}

// New creates a new HUD with the given configuration
func New(renderer render.Renderer, config *HUDConfig, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     renderer,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   200,
	}
}

// SetStatus updates the displayed values
func (h *HUD) SetStatus(s Status) {
	h.status = s
}

// FormatDegrees renders an angle label, e.g. "60°".
func FormatDegrees(deg float64) string {
	return strconv.FormatFloat(deg, 'f', -1, 64) + "°"
}

// FormatMeters renders a map distance in meters, one meter being 100 units.
func FormatMeters(units float64) string {
	return strconv.FormatFloat(units/100, 'f', -1, 64) + " m"
}

// Lines returns the rows the HUD would draw for the current status.
func (h *HUD) Lines() []Line {
	var lines []Line

	if h.config.ShowSettings {
		lines = append(lines,
			Line{"FOV: " + FormatDegrees(h.status.FOV), labelColor},
			Line{"Wall height: " + FormatMeters(h.status.WallHeight), labelColor},
			Line{"View distance: " + FormatMeters(h.status.MaxDistance), labelColor},
		)
	}

	if h.config.ShowEditInfo {
		lines = append(lines,
			Line{"Mode: " + h.status.Mode, modeColor},
			Line{fmt.Sprintf("Walls: %d", h.status.Walls), labelColor},
		)
	}

	if h.config.ShowHelp {
		for _, text := range helpLines {
			lines = append(lines, Line{text, helpColor})
		}
	}

	return lines
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image) {
	lines := h.Lines()
	if len(lines) == 0 {
		return
	}

	h.panelHeight = len(lines)*lineHeight + 16
	for _, line := range lines {
		w, _ := h.renderer.MeasureText(line.Text, 1)
		if w+16 > h.panelWidth {
			h.panelWidth = w + 16
		}
	}

	x, y := h.calculatePosition()
	h.drawPanel(screen, x, y)

	currentY := y + 8
	for _, line := range lines {
		h.drawText(screen, line.Text, x+8, currentY, line.Color)
		currentY += lineHeight
	}
}

// PanelBounds returns the top-left corner and size of the last drawn panel.
func (h *HUD) PanelBounds() (x, y, width, height int) {
	x, y = h.calculatePosition()
	return x, y, h.panelWidth, h.panelHeight
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - h.panelHeight - padding
	case "bottom-right":
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - h.panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}

// drawPanel draws the semi-transparent background panel with a border
func (h *HUD) drawPanel(screen render.Image, x, y int) {
	alpha := uint8(h.config.Opacity * 255)
	fx, fy := float32(x), float32(y)
	w, ht := float32(h.panelWidth), float32(h.panelHeight)

	h.renderer.FillRect(screen, fx, fy, w, ht, color.RGBA{20, 20, 30, alpha})

	border := color.RGBA{60, 60, 80, alpha}
	h.renderer.StrokeLine(screen, fx, fy, fx+w, fy, 1, border)
	h.renderer.StrokeLine(screen, fx, fy+ht, fx+w, fy+ht, 1, border)
	h.renderer.StrokeLine(screen, fx, fy, fx, fy+ht, 1, border)
	h.renderer.StrokeLine(screen, fx+w, fy, fx+w, fy+ht, 1, border)
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(screen render.Image, text string, x, y int, clr color.RGBA) {
	h.renderer.DrawText(screen, text, x+1, y+1, color.RGBA{0, 0, 0, 255}, 1)
	h.renderer.DrawText(screen, text, x, y, clr, 1)
}
