package workers

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add appends a worker. It must not be called while Run is in progress.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker on its own goroutine and blocks until all of them
// return. The first error cancels the context shared by the others and is
// returned.
func (w *Workers) Run(ctx context.Context) error {
	p := pool.New().WithContext(ctx).WithCancelOnError()
	for _, worker := range w.workers {
		p.Go(worker.Run)
	}
	return p.Wait()
}
