//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sheikhrachel/go-life/model"
)

// screenCanvas paints cells as filled squares onto an ebiten image
type screenCanvas struct {
	dst      *ebiten.Image
	cellSize int
}

func (c *screenCanvas) DrawCell(cell model.Cell, clr color.Color) {
	size := float32(c.cellSize)
	vector.DrawFilledRect(c.dst, float32(cell.Col)*size, float32(cell.Row)*size, size, size, clr, false)
}

// PresentFrame is a no-op, ebiten presents the screen after Draw returns
func (c *screenCanvas) PresentFrame() {}
