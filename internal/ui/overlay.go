//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the modal game-over panel.
type Overlay struct {
	panel *ebiten.Image
}

// NewOverlay constructs the game-over overlay.
func NewOverlay() *Overlay {
	o := &Overlay{panel: ebiten.NewImage(1, 1)}
	o.panel.Fill(color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xe0})
	return o
}

// Draw centers the "play again?" panel on the screen.
func (o *Overlay) Draw(screen *ebiten.Image, score int) {
	const panelW, panelH = 220, 72
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	x := (sw - panelW) / 2
	y := (sh - panelH) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(panelW, panelH)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(o.panel, op)

	face := basicfont.Face7x13
	text.Draw(screen, "GAME OVER", face, x+12, y+20, color.White)
	text.Draw(screen, fmt.Sprintf("score: %d", score), face, x+12, y+38, color.White)
	text.Draw(screen, "play again?  [Y/N]", face, x+12, y+56, color.White)
}
