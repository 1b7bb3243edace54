package evaluate

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"specfit/internal/dist"
	"specfit/internal/mgf"
)

// task pairs one family with one sample; the cross-product is built
// eagerly so row order never depends on scheduling.
type task struct {
	family *dist.Family
	sample mgf.Sample
}

// Dispatcher runs the family x sample cross-product on a bounded worker
// pool.
type Dispatcher struct {
	Workers int
	Opts    TaskOptions
	Log     *slog.Logger
}

// Run executes every task and returns results in task-submission order:
// all families against the first sample, then the next, and so on. Tasks
// never fail the group; failures surface as sentinel rows.
func (d *Dispatcher) Run(ctx context.Context, families []*dist.Family, samples []mgf.Sample) []Result {
	tasks := make([]task, 0, len(families)*len(samples))
	for _, s := range samples {
		for _, f := range families {
			tasks = append(tasks, task{family: f, sample: s})
		}
	}

	workers := d.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := d.Log
	if log == nil {
		log = slog.Default()
	}
	log.Info("dispatching tasks",
		"tasks", len(tasks), "workers", workers, "reps", d.Opts.Reps)

	results := make([]Result, len(tasks))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, tk := range tasks {
		i, tk := i, tk
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = sentinel(tk.family.Name(), tk.sample.Label, 0)
				return nil
			}
			results[i] = RunTask(tk.family, tk.sample, d.Opts)
			n := done.Add(1)
			log.Info("task finished",
				"family", tk.family.Name(), "data", tk.sample.Label,
				"progress", n, "total", len(tasks))
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors

	return results
}
