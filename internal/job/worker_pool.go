package job

import (
	"context"
	"log/slog"
	"sync"
)

// WorkerPool manages a pool of worker goroutines that process jobs
// from a job queue. It handles graceful shutdown and worker lifecycle.
type WorkerPool struct {
	// queue provides read access to the jobs to be processed
	queue QueueReader

	// workerCount is the number of concurrent workers to start
	workerCount int

	// wg tracks active worker goroutines for clean shutdown
	wg sync.WaitGroup

	// ctx is used for cancellation and shutdown signaling
	ctx context.Context

	// cancel is the function to call to cancel the context
	cancel context.CancelFunc

	// logger for structured logging
	logger *slog.Logger

	// errorHandler is called when a job execution fails.
	// If nil, errors are only logged.
	errorHandler func(job Job, err error)
}

// WorkerPoolConfig holds configuration options for the worker pool
type WorkerPoolConfig struct {
	// WorkerCount determines how many concurrent worker goroutines to start.
	// If zero or negative, defaults to 1.
	WorkerCount int
}

// DefaultWorkerPoolConfig returns a WorkerPoolConfig with reasonable defaults
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		WorkerCount: 2,
	}
}

// NewWorkerPool creates a new worker pool with the specified configuration
func NewWorkerPool(queue QueueReader, config WorkerPoolConfig, logger *slog.Logger) *WorkerPool {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "worker_pool"))

	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
		logger.Warn("invalid worker count specified, using default",
			"specified_count", config.WorkerCount,
			"default_count", 1)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		queue:       queue,
		workerCount: workerCount,
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger,
	}
}

// SetErrorHandler allows setting a custom error handler for job execution failures
func (p *WorkerPool) SetErrorHandler(handler func(job Job, err error)) {
	p.errorHandler = handler
}

// Start launches the worker goroutines.
func (p *WorkerPool) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	p.logger.Info("worker pool started", "worker_count", p.workerCount)
}

// Stop signals the workers to finish and waits for them to exit.
// Workers drain jobs already in the queue before stopping; the queue
// should be closed by its owner before calling Stop.
func (p *WorkerPool) Stop() {
	p.cancel()
	p.wg.Wait()
	p.logger.Info("worker pool stopped")
}

// worker consumes jobs from the queue until the queue is closed or the
// pool context is canceled.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	log := p.logger.With(slog.Int("worker_id", id))
	log.Debug("worker started")

	for {
		select {
		case <-p.ctx.Done():
			p.drain(log)
			log.Debug("worker stopping, context canceled")
			return
		case j, ok := <-p.queue.GetChannel():
			if !ok {
				log.Debug("worker stopping, queue closed")
				return
			}
			p.execute(log, j)
		}
	}
}

// drain runs the jobs still buffered in the queue after cancellation.
// Cancellation can win the select race against a closed channel;
// buffered jobs must still run before the worker exits.
func (p *WorkerPool) drain(log *slog.Logger) {
	for {
		select {
		case j, ok := <-p.queue.GetChannel():
			if !ok {
				return
			}
			p.execute(log, j)
		default:
			return
		}
	}
}

// execute runs a single job and routes any failure to the error handler.
func (p *WorkerPool) execute(log *slog.Logger, j Job) {
	log.Debug("executing job", "job_id", j.ID(), "job_type", j.Type())

	if err := j.Execute(p.ctx); err != nil {
		log.Error("job execution failed",
			"job_id", j.ID(),
			"job_type", j.Type(),
			"error", err)
		if p.errorHandler != nil {
			p.errorHandler(j, err)
		}
		return
	}

	log.Debug("job completed", "job_id", j.ID(), "job_type", j.Type())
}
