//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the score and frame-rate readout across the top of the screen.
type HUD struct {
	bar *ebiten.Image
}

// NewHUD constructs the heads-up display.
func NewHUD() *HUD {
	h := &HUD{bar: ebiten.NewImage(1, 1)}
	h.bar.Fill(color.RGBA{A: 0xa0})
	return h
}

// Draw paints the readout onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, score, size, fps int) {
	w := screen.Bounds().Dx()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), 18)
	screen.DrawImage(h.bar, op)

	line := fmt.Sprintf("score %d   size %d   fps %d", score, size, fps)
	text.Draw(screen, line, basicfont.Face7x13, 6, 13, color.White)
}
