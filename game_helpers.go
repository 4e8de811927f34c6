package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// runTerminal animates the session in the terminal until interrupted or
// maxGenerations is reached
func runTerminal(session *engine.Session, maxGenerations int) {
	var (
		grid     = session.Grid()
		cfg      = session.Config()
		renderer = model.NewTerminalRenderer(os.Stdout, grid.GetWidth())
	)
	displayGameInfo(os.Stdout, session)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// poll faster than the interval, Session.Tick decides when a step is due
	ticker := time.NewTicker(max(cfg.Interval/4, time.Millisecond))
	defer ticker.Stop()

	session.Handle(engine.StartStop)
	for {
		renderer.Clear()
		displayGameStatus(renderer.Writer(), session)
		model.Draw(session.Grid(), renderer, cfg.Foreground, cfg.Background)

		if maxGenerations > 0 && session.Controller().Generation() >= maxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", maxGenerations)
			return
		}

		for stepped := false; !stepped; {
			select {
			case <-sigChan:
				fmt.Println("\nShutting down...")
				displayFinalStats(os.Stdout, session.Stats())
				return
			case now := <-ticker.C:
				if session.Mode() != engine.Running {
					return
				}
				stepped = session.Tick(now)
			}
		}
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, session *engine.Session) {
	grid := session.Grid()
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d | Interval: %v\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells(), session.Config().Interval)
	fmt.Fprintln(w, "Press Ctrl+C to exit")
	fmt.Fprintln(w)
}

// displayGameStatus shows the current game status
func displayGameStatus(w io.Writer, session *engine.Session) {
	var (
		controller  = session.Controller()
		grid        = controller.Current()
		livingCells = grid.CountLivingCells()
		density     = float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100
		stats       = session.Stats()
	)

	status := "Active"
	if controller.IsStagnant() {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		controller.Generation(), livingCells, density, status)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Fprintln(w)
}

// displayFinalStats prints a summary when the animation ends
func displayFinalStats(w io.Writer, stats *utils.Stats) {
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
