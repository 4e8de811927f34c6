package model

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

const (
	gridPosBlock = "██"

	// clear screen and home the cursor
	ansiClearScreen = "\x1b[2J\x1b[H"
	ansiReset       = "\x1b[0m"
)

// Canvas is the drawing surface a host provides for a grid
type Canvas interface {
	DrawCell(c Cell, clr color.Color)
	PresentFrame()
}

// Draw paints every cell of g onto cv, live cells in fg and dead cells in bg,
// then presents the frame
func Draw(g *Grid, cv Canvas, fg, bg color.Color) {
	for row := range g.height {
		for col := range g.width {
			clr := bg
			if g.cells[col][row] {
				clr = fg
			}
			cv.DrawCell(Cell{Col: col, Row: row}, clr)
		}
	}
	cv.PresentFrame()
}

// TerminalRenderer draws a grid as 24-bit coloured block characters
type TerminalRenderer struct {
	out   *bufio.Writer
	width int
}

// NewTerminalRenderer creates a renderer for grids width cells wide
func NewTerminalRenderer(w io.Writer, width int) *TerminalRenderer {
	return &TerminalRenderer{
		out:   bufio.NewWriter(w),
		width: width,
	}
}

// Clear queues a clear-screen ahead of the next frame
func (r *TerminalRenderer) Clear() {
	r.out.WriteString(ansiClearScreen)
}

// DrawCell writes one cell, ending the line after the last column
func (r *TerminalRenderer) DrawCell(c Cell, clr color.Color) {
	cr, cg, cb, _ := clr.RGBA()
	fmt.Fprintf(r.out, "\x1b[38;2;%d;%d;%dm%s", cr>>8, cg>>8, cb>>8, gridPosBlock)
	if c.Col == r.width-1 {
		r.out.WriteString(ansiReset + "\n")
	}
}

// PresentFrame flushes the buffered frame
func (r *TerminalRenderer) PresentFrame() {
	r.out.Flush()
}

// Writer exposes the buffered output so status lines land in the same frame
func (r *TerminalRenderer) Writer() io.Writer {
	return r.out
}
