//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	padX       = 8
	padY       = 6
)

var (
	panelColor = color.RGBA{R: 28, G: 24, B: 20, A: 170}
	textColor  = color.RGBA{R: 240, G: 236, B: 226, A: 255}
	flashColor = color.RGBA{R: 255, G: 214, B: 140, A: 255}
)

// HUD draws the status panel and transient action messages over the scene.
type HUD struct {
	pixel *ebiten.Image

	flash      string
	flashUntil time.Time
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Flash shows msg at the bottom of the screen for d.
func (h *HUD) Flash(msg string, d time.Duration) {
	h.flash = msg
	h.flashUntil = time.Now().Add(d)
}

// Draw renders the status lines in a panel at the top and any active flash
// message at the bottom.
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	if len(lines) > 0 {
		panelH := len(lines)*lineHeight + 2*padY
		h.fillRect(screen, 0, 0, float64(screen.Bounds().Dx()), float64(panelH), panelColor)
		for i, line := range lines {
			text.Draw(screen, line, basicfont.Face7x13, padX, padY+(i+1)*lineHeight-4, textColor)
		}
	}

	if h.flash != "" && time.Now().Before(h.flashUntil) {
		y := screen.Bounds().Dy() - lineHeight - padY
		h.fillRect(screen, 0, float64(y-padY), float64(screen.Bounds().Dx()), float64(lineHeight+2*padY), panelColor)
		text.Draw(screen, h.flash, basicfont.Face7x13, padX, y+lineHeight-6, flashColor)
	}
}

func (h *HUD) fillRect(dst *ebiten.Image, x, y, w, ht float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, ht)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
	dst.DrawImage(h.pixel, op)
}
