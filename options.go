package main

import (
	"flag"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/ui"
	"github.com/sheikhrachel/go-life/utils"
)

// Options are the command-line parameters of the program
type Options struct {
	ConfigFile  string
	Terminal    bool
	Generations int
	CellSize    int
}

// NewOptions returns Options populated with defaults
func NewOptions() *Options {
	return &Options{
		ConfigFile: utils.DefaultConfigFile,
		CellSize:   engine.DefaultCellSize,
	}
}

// Bind attaches the options to the provided FlagSet
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "settings and pattern file")
	fs.BoolVar(&o.Terminal, "terminal", o.Terminal, "animate in the terminal instead of a window")
	fs.IntVar(&o.Generations, "generations", o.Generations, "stop the terminal animation after this many generations (0 = no limit)")
	fs.IntVar(&o.CellSize, "cell-size", o.CellSize, "cell size in pixels, raised if the menu legend would not fit")
}

// EffectiveCellSize returns CellSize raised to the smallest size at which a
// grid cols cells wide still fits the menu legend
func (o *Options) EffectiveCellSize(cols int) int {
	return max(o.CellSize, ui.MinCellSize(cols))
}
