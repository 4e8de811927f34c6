package model

import (
	"iter"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	cellSeparator    = ","
	patternSeparator = "|"
)

var (
	// ErrMalformedPattern is returned for entries that are not "col,row" integer pairs
	ErrMalformedPattern = errors.New("malformed pattern")
	// ErrOutOfRange is returned for entries outside the grid
	ErrOutOfRange = errors.New("cell out of range")
)

// FormatPattern joins cells into the persisted "col,row|col,row" form
func FormatPattern(cells iter.Seq[Cell]) string {
	var sb strings.Builder
	for c := range cells {
		if sb.Len() > 0 {
			sb.WriteString(patternSeparator)
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParsePattern decodes a persisted pattern for a width x height grid.
// Either every entry is valid or nothing is returned.
func ParsePattern(s string, width, height int) ([]Cell, error) {
	if s == "" {
		return []Cell{}, nil
	}

	entries := strings.Split(s, patternSeparator)
	cells := make([]Cell, 0, len(entries))
	for i, entry := range entries {
		c, err := parseCell(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "[ParsePattern] entry %d", i)
		}
		if c.Col < 0 || c.Col >= width || c.Row < 0 || c.Row >= height {
			return nil, errors.Wrapf(ErrOutOfRange, "[ParsePattern] entry %d: %v not within %dx%d", i, c, width, height)
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func parseCell(entry string) (Cell, error) {
	colStr, rowStr, ok := strings.Cut(entry, cellSeparator)
	if !ok || strings.Contains(rowStr, cellSeparator) {
		return Cell{}, errors.Wrapf(ErrMalformedPattern, "%q", entry)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Cell{}, errors.Wrapf(ErrMalformedPattern, "%q: column", entry)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Cell{}, errors.Wrapf(ErrMalformedPattern, "%q: row", entry)
	}
	return Cell{Col: col, Row: row}, nil
}
