//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/engine"
)

// drawLegend renders the menu buttons in a strip starting at y, greying out
// the ones the current mode does not allow
func drawLegend(screen *ebiten.Image, items []engine.MenuItem, y int) {
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()

	for i, item := range items {
		if i >= len(legendSlots) {
			break
		}
		r := legendRect(i, y)
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()), legendBg, false)

		var fg color.Color = legendEnabled
		if !item.Enabled {
			fg = legendDisabled
		}
		text.Draw(screen, item.Label, face, r.Min.X+legendOffset, r.Min.Y+legendOffset+ascent, fg)
	}
}
