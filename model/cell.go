package model

import "strconv"

// Cell is a grid coordinate
type Cell struct {
	Col int
	Row int
}

// At returns the cell at column col and row row
func At(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// String formats the cell the way it is persisted, e.g. "4,17"
func (c Cell) String() string {
	return strconv.Itoa(c.Col) + cellSeparator + strconv.Itoa(c.Row)
}
