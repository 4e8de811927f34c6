// Command go-life runs Conway's Game of Life on a 63x63 wrapping board,
// keeping colours, step interval and the saved pattern in gameoflife.ini.
//
// The window needs the ebiten build tag:
//
//	go build -tags ebiten .
//
// A build without the tag cannot open a window and exits with an error unless
// it is started with -terminal, which animates the pattern in the terminal.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/ui"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	opts := NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "gameoflife: ", log.LstdFlags)

	// Settings problems never stop the program, defaults are used instead
	config, file, err := utils.LoadConfig(opts.ConfigFile, model.DefaultWidth, model.DefaultHeight)
	if err != nil {
		logger.Printf("load config: %v", err)
	}

	controller := engine.NewController(model.DefaultWidth, model.DefaultHeight)
	session := engine.NewSession(controller, config, file, logger)
	session.SetCellSize(opts.EffectiveCellSize(model.DefaultWidth))

	if opts.Terminal {
		runTerminal(session, opts.Generations)
		return
	}

	if err := ui.Run(session); err != nil {
		logger.Printf("display: %v", err)
		os.Exit(1)
	}
}
