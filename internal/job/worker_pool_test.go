package job

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackingJob signals completion and optionally fails.
type trackingJob struct {
	id   uuid.UUID
	err  error
	done chan struct{}
}

func newTrackingJob(err error) *trackingJob {
	return &trackingJob{
		id:   uuid.New(),
		err:  err,
		done: make(chan struct{}),
	}
}

func (j *trackingJob) ID() uuid.UUID { return j.id }
func (j *trackingJob) Type() string  { return "tracking" }

func (j *trackingJob) Execute(ctx context.Context) error {
	close(j.done)
	return j.err
}

func waitDone(t *testing.T, j *trackingJob) {
	t.Helper()
	select {
	case <-j.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for job execution")
	}
}

func TestWorkerPoolExecutesJobs(t *testing.T) {
	t.Parallel()

	q := NewQueue(10, nil)
	pool := NewWorkerPool(q, WorkerPoolConfig{WorkerCount: 2}, nil)
	pool.Start()
	defer pool.Stop()

	jobs := []*trackingJob{newTrackingJob(nil), newTrackingJob(nil), newTrackingJob(nil)}
	for _, j := range jobs {
		require.NoError(t, q.Enqueue(j))
	}
	for _, j := range jobs {
		waitDone(t, j)
	}
}

func TestWorkerPoolRoutesFailuresToErrorHandler(t *testing.T) {
	t.Parallel()

	q := NewQueue(10, nil)
	pool := NewWorkerPool(q, WorkerPoolConfig{WorkerCount: 1}, nil)

	var mu sync.Mutex
	var failed []uuid.UUID
	handled := make(chan struct{}, 1)
	pool.SetErrorHandler(func(j Job, err error) {
		mu.Lock()
		failed = append(failed, j.ID())
		mu.Unlock()
		handled <- struct{}{}
	})

	pool.Start()
	defer pool.Stop()

	j := newTrackingJob(errors.New("smtp unreachable"))
	require.NoError(t, q.Enqueue(j))
	waitDone(t, j)

	select {
	case <-handled:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error handler")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, failed, 1)
	assert.Equal(t, j.ID(), failed[0])
}

func TestWorkerPoolStopsWhenQueueCloses(t *testing.T) {
	t.Parallel()

	q := NewQueue(1, nil)
	pool := NewWorkerPool(q, WorkerPoolConfig{WorkerCount: 1}, nil)
	pool.Start()

	q.Close()

	stopped := make(chan struct{})
	go func() {
		pool.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("worker pool did not stop after queue close")
	}
}

func TestWorkerPoolDrainsQueuedJobsOnStop(t *testing.T) {
	t.Parallel()

	q := NewQueue(10, nil)
	pool := NewWorkerPool(q, WorkerPoolConfig{WorkerCount: 1}, nil)

	jobs := []*trackingJob{
		newTrackingJob(nil),
		newTrackingJob(nil),
		newTrackingJob(nil),
		newTrackingJob(nil),
		newTrackingJob(nil),
	}
	for _, j := range jobs {
		require.NoError(t, q.Enqueue(j))
	}
	q.Close()

	// Stop immediately after Start: cancellation must not discard the
	// jobs already buffered in the closed queue.
	pool.Start()
	pool.Stop()

	for _, j := range jobs {
		select {
		case <-j.done:
		default:
			t.Fatal("job enqueued before shutdown was not executed")
		}
	}
}

func TestWorkerPoolDefaultsInvalidWorkerCount(t *testing.T) {
	t.Parallel()

	q := NewQueue(1, nil)
	pool := NewWorkerPool(q, WorkerPoolConfig{WorkerCount: 0}, nil)
	assert.Equal(t, 1, pool.workerCount)
}
