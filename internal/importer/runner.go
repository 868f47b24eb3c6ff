package importer

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrQueueFull means the import queue is saturated; the upload should be
// retried later.
var ErrQueueFull = errors.New("import queue is full")

// Runner is a fixed-size worker pool for background import jobs. Bounding the
// pool keeps a burst of uploads from spawning unbounded work.
type Runner struct {
	queue   chan func()
	workers int
	wg      sync.WaitGroup
	logger  *slog.Logger
	once    sync.Once
}

func NewRunner(workers, queueSize int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Runner{
		queue:   make(chan func(), queueSize),
		workers: workers,
		logger:  logger,
	}
}

func (r *Runner) Start() {
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go func(worker int) {
			defer r.wg.Done()
			for job := range r.queue {
				job()
			}
			r.logger.Debug("import worker stopped", "worker", worker)
		}(i)
	}
	r.logger.Info("import runner started", "workers", r.workers, "queue_size", cap(r.queue))
}

// Enqueue hands a job to the pool without blocking; a full queue is the
// caller's problem to surface.
func (r *Runner) Enqueue(job func()) error {
	select {
	case r.queue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop drains the queue and waits for in-flight jobs to finish.
func (r *Runner) Stop() {
	r.once.Do(func() { close(r.queue) })
	r.wg.Wait()
}
