package model

import (
	"crypto/md5"
	"fmt"
	"iter"
)

const (
	// DefaultWidth and DefaultHeight are the board size saved patterns assume
	DefaultWidth  = 63
	DefaultHeight = 63
)

// Grid is a fixed-size toroidal board of live/dead cells
type Grid struct {
	width  int
	height int
	cells  [][]bool // indexed [col][row]
}

// NewGrid creates an empty grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, width)
	for i := range cells {
		cells[i] = make([]bool, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewDefaultGrid creates an empty 63x63 grid
func NewDefaultGrid() *Grid {
	return NewGrid(DefaultWidth, DefaultHeight)
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Contains reports whether c lies inside the grid
func (g *Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// SameSize reports whether both grids have the same dimensions
func (g *Grid) SameSize(other *Grid) bool {
	return g.width == other.width && g.height == other.height
}

// Get returns the state of a cell, out-of-range cells read as dead
func (g *Grid) Get(c Cell) bool {
	if !g.Contains(c) {
		return false
	}
	return g.cells[c.Col][c.Row]
}

// Set makes a cell live
func (g *Grid) Set(c Cell) {
	g.put(c, true)
}

// Unset makes a cell dead
func (g *Grid) Unset(c Cell) {
	g.put(c, false)
}

// put writes a cell, ignoring coordinates outside the grid
func (g *Grid) put(c Cell, alive bool) {
	if g.Contains(c) {
		g.cells[c.Col][c.Row] = alive
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for col := range g.width {
		clear(g.cells[col])
	}
}

// LiveCells yields every live cell, scanning row by row and column by column
// within a row. The sequence is lazy and may be ranged over repeatedly.
func (g *Grid) LiveCells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for row := range g.height {
			for col := range g.width {
				if g.cells[col][row] && !yield(Cell{Col: col, Row: row}) {
					return
				}
			}
		}
	}
}

// Neighbors returns the eight cells around c, wrapping at the edges
func (g *Grid) Neighbors(c Cell) [8]Cell {
	var (
		above = c.Row - 1
		below = c.Row + 1
		left  = c.Col - 1
		right = c.Col + 1
	)
	if c.Row == 0 {
		above = g.height - 1
	}
	if c.Row == g.height-1 {
		below = 0
	}
	if c.Col == 0 {
		left = g.width - 1
	}
	if c.Col == g.width-1 {
		right = 0
	}

	return [8]Cell{
		{left, above}, {c.Col, above}, {right, above},
		{left, c.Row}, {right, c.Row},
		{left, below}, {c.Col, below}, {right, below},
	}
}

// CountLiveNeighbors counts living neighbors of c. Like Get, cells outside
// the grid read as dead.
func (g *Grid) CountLiveNeighbors(c Cell) (count int) {
	for _, n := range g.Neighbors(c) {
		if g.Get(n) {
			count++
		}
	}
	return
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for col := range g.width {
		for row := range g.height {
			if g.cells[col][row] {
				count++
			}
		}
	}
	return
}

// Serialize encodes the live cells as "col,row|col,row|...", or "" for an
// empty grid
func (g *Grid) Serialize() string {
	return FormatPattern(g.LiveCells())
}

// Deserialize clears the grid and makes every given cell live. Bounds are the
// caller's concern, see ParsePattern.
func (g *Grid) Deserialize(cells []Cell) {
	g.Clear()
	for _, c := range cells {
		g.Set(c)
	}
}

// Equal reports whether both grids have the same size and the same live cells
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameSize(other) {
		return false
	}
	for col := range g.width {
		for row := range g.height {
			if g.cells[col][row] != other.cells[col][row] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for row := range g.height {
		for col := range g.width {
			if g.cells[col][row] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
