package engine

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
)

// BatchJob is one pattern to evolve headlessly
type BatchJob struct {
	Name    string
	Pattern []model.Cell
}

// BatchOptions configures RunBatch
type BatchOptions struct {
	Width            int
	Height           int
	Generations      int
	StopWhenStagnant bool
	Workers          int // defaults to runtime.NumCPU()
}

// BatchResult is the final state of one job
type BatchResult struct {
	Name        string
	Generations int
	Population  int
	Stagnant    bool
	Pattern     string
}

// RunBatch evolves every job on its own controller. Jobs run concurrently;
// each simulation is stepped by a single goroutine. Results are returned in
// job order.
func RunBatch(ctx context.Context, jobs []BatchJob, opts BatchOptions) ([]BatchResult, error) {
	var (
		results    = make([]BatchResult, len(jobs))
		pool       = model.NewGridPool(opts.Width, opts.Height)
		eg, egCtx  = errgroup.WithContext(ctx)
		numWorkers = opts.Workers
	)
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	eg.SetLimit(numWorkers)

	for i, job := range jobs {
		eg.Go(func() error {
			result, err := runJob(egCtx, job, opts, pool)
			if err != nil {
				return errors.Wrapf(err, "[RunBatch] %s", job.Name)
			}
			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runJob(ctx context.Context, job BatchJob, opts BatchOptions, pool *model.GridPool) (BatchResult, error) {
	controller := NewControllerFromPool(pool)
	defer controller.Release(pool)

	controller.Load(job.Pattern)

	stagnant := false
	for controller.Generation() < opts.Generations {
		if err := ctx.Err(); err != nil {
			return BatchResult{}, err
		}
		if err := controller.Step(); err != nil {
			return BatchResult{}, err
		}
		if opts.StopWhenStagnant && controller.IsStagnant() {
			stagnant = true
			break
		}
	}

	return BatchResult{
		Name:        job.Name,
		Generations: controller.Generation(),
		Population:  controller.Population(),
		Stagnant:    stagnant || controller.IsStagnant(),
		Pattern:     controller.Save(),
	}, nil
}
