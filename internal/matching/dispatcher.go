package matching

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Dispatcher decouples report ingestion from matching: the report handler
// enqueues the new item's ID exactly once and returns immediately, and a
// worker pool runs the engine in the background. A run executes to
// completion or not at all; re-triggering a crashed run is safe because the
// engine is idempotent.
type Dispatcher struct {
	engine  *Engine
	queue   chan string
	group   *errgroup.Group
	workers int
	ctx     context.Context
}

// NewDispatcher creates a dispatcher with the given worker count and queue
// capacity.
func NewDispatcher(engine *Engine, workers, buffer int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		engine:  engine,
		queue:   make(chan string, buffer),
		group:   &errgroup.Group{},
		workers: workers,
		ctx:     context.Background(),
	}
}

// Start launches the worker pool. ctx bounds in-flight engine runs during
// shutdown; the queue itself is drained by Close.
func (d *Dispatcher) Start(ctx context.Context) {
	d.ctx = ctx
	for i := 0; i < d.workers; i++ {
		d.group.Go(d.work)
	}
	slog.Info("matching dispatcher started", "workers", d.workers, "queue", cap(d.queue))
}

// Enqueue schedules one matching run for an item. Blocks when the queue is
// full, applying backpressure to the report path rather than dropping runs.
func (d *Dispatcher) Enqueue(itemID string) {
	d.queue <- itemID
}

// Close stops accepting work, drains the queue, and waits for in-flight runs.
func (d *Dispatcher) Close() {
	close(d.queue)
	_ = d.group.Wait() // workers log their own failures and never return errors
}

func (d *Dispatcher) work() error {
	for itemID := range d.queue {
		if err := d.engine.Run(d.ctx, itemID); err != nil {
			slog.Error("matching run failed", "item", itemID, "error", err)
		}
	}
	return nil
}
