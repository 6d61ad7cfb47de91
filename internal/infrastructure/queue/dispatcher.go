package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/taskhive/task-system/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ActivityWriter persists a single activity entry.
type ActivityWriter interface {
	Record(ctx context.Context, entry domain.ActivityEntry) error
}

// Dispatcher routes activity entries to a fixed set of workers using
// consistent hashing on the task id, guaranteeing per-task ordering of the
// audit trail without blocking request handling.
type Dispatcher struct {
	workers []chan domain.ActivityEntry
	writer  ActivityWriter
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, writer ActivityWriter, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ActivityEntry, numWorkers),
		writer:  writer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an entry to the worker responsible for its task.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(entry domain.ActivityEntry) {
	d.workers[d.shardIndex(entry.TaskID)] <- entry
}

// shardIndex maps a task id deterministically to a worker index.
func (d *Dispatcher) shardIndex(taskID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(taskID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.writer.Record(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("task_id", entry.TaskID).
					Str("action", string(entry.Action)).
					Int("worker_id", id).
					Msg("failed to record activity")
			}
		}
	}
}
