package rules

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

var (
	// ErrSameGrid is returned when source and destination are one grid
	ErrSameGrid = errors.New("source and destination must be distinct grids")
	// ErrSizeMismatch is returned when source and destination differ in size
	ErrSizeMismatch = errors.New("source and destination sizes differ")
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Apply computes the next generation of source into dest. Every cell of dest
// is overwritten and source is only read.
func Apply(source, dest *model.Grid) error {
	if source == dest {
		return errors.Wrap(ErrSameGrid, "[Apply]")
	}
	if !source.SameSize(dest) {
		return errors.Wrapf(ErrSizeMismatch, "[Apply] %dx%d into %dx%d",
			source.GetWidth(), source.GetHeight(), dest.GetWidth(), dest.GetHeight())
	}

	for row := range source.GetHeight() {
		for col := range source.GetWidth() {
			c := model.At(col, row)
			if ApplyConwayRules(source.CountLiveNeighbors(c), source.Get(c)) {
				dest.Set(c)
			} else {
				dest.Unset(c)
			}
		}
	}
	return nil
}
