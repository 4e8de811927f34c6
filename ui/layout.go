package ui

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

const (
	// WindowTitle is shown in the title bar
	WindowTitle = "Conway's Game of Life"

	legendHeight = 21
	legendOffset = 2
	// legendWidth is the narrowest window showing every legend button
	legendWidth = 378
)

// ErrNoDisplay is returned by Run when no window backend is available
var ErrNoDisplay = errors.New("no display backend")

var (
	legendEnabled  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	legendDisabled = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	legendBg       = color.RGBA{B: 139, A: 255}
)

// legendSlots are the x offset and width of each legend button, in menu order
var legendSlots = [...]struct{ x, width int }{
	{5, 95},
	{105, 64},
	{174, 64},
	{243, 64},
	{312, 64},
}

// ScreenSize returns the window size for a grid of cols x rows cells with
// the legend strip below it
func ScreenSize(cols, rows, cellSize int) (int, int) {
	return cols * cellSize, rows*cellSize + legendHeight
}

// legendRect returns the screen rectangle of legend button i, placed under a
// grid that is gridHeight pixels tall
func legendRect(i, gridHeight int) image.Rectangle {
	slot := legendSlots[i]
	return image.Rect(slot.x, gridHeight, slot.x+slot.width, gridHeight+legendHeight)
}

// MinCellSize returns the smallest cell size at which a grid cols cells wide
// leaves room for the whole legend
func MinCellSize(cols int) int {
	if cols <= 0 {
		return 1
	}
	return (legendWidth + cols - 1) / cols
}
