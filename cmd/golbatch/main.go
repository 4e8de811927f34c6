// Command golbatch evolves the patterns stored in one or more settings files
// without opening a window.
//
//	golbatch [-generations N] [-stop-when-stagnant] [-write] file.ini...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	logger := log.New(os.Stderr, "golbatch: ", 0)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

// run parses args, evolves every readable file and prints one line per
// pattern. Unreadable files and rejected patterns are logged and skipped.
func run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("golbatch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		generations = fs.Int("generations", 100, "generations to compute per pattern")
		stagnant    = fs.Bool("stop-when-stagnant", false, "stop a pattern early once it is static or cycling")
		write       = fs.Bool("write", false, "store the evolved pattern back into each file")
		workers     = fs.Int("workers", 0, "patterns evolved at once (0 = number of CPUs)")
	)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[run]")
	}
	if fs.NArg() == 0 {
		return errors.New("no settings files given")
	}

	var (
		jobs  []engine.BatchJob
		files = map[string]*utils.ConfigFile{}
	)
	for _, name := range fs.Args() {
		config, file, err := utils.LoadConfig(name, model.DefaultWidth, model.DefaultHeight)
		if err != nil {
			logger.Printf("skipping %s: %v", name, err)
			continue
		}
		jobs = append(jobs, engine.BatchJob{Name: name, Pattern: config.Pattern})
		files[name] = file
	}

	results, err := engine.RunBatch(ctx, jobs, engine.BatchOptions{
		Width:            model.DefaultWidth,
		Height:           model.DefaultHeight,
		Generations:      *generations,
		StopWhenStagnant: *stagnant,
		Workers:          *workers,
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		status := "active"
		switch {
		case r.Population == 0:
			status = "extinct"
		case r.Stagnant:
			status = "stagnant"
		}
		fmt.Fprintf(stdout, "%s\tgen=%d\tliving=%d\t%s\n", r.Name, r.Generations, r.Population, status)

		if *write {
			writeBack(files[r.Name], r, logger)
		}
	}
	return nil
}

// writeBack stores the evolved pattern; a pattern that died out removes the
// stored one so the next run does not start from the old cells
func writeBack(file *utils.ConfigFile, r engine.BatchResult, logger *log.Logger) {
	var err error
	if r.Pattern == "" {
		err = file.ClearPattern()
	} else {
		err = file.SavePattern(r.Pattern)
	}
	if err != nil {
		logger.Printf("write %s: %v", r.Name, err)
	}
}
