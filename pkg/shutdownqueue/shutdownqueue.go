// Package shutdownqueue provides a LIFO queue of cleanup tasks that main
// drains once at the end of a run:
//
//	var q shutdownqueue.Queue
//	q.Add(closeServer)
//	...
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//	err := q.Shutdown(ctx)
package shutdownqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Task is a shutdown function. It should honor ctx and return an error if
// it can't finish.
type Task func(ctx context.Context) error

// Queue runs registered tasks in reverse order of registration. The zero
// value is ready to use. Shutdown is idempotent, recovers panicking tasks,
// and aggregates errors with errors.Join; Add after shutdown has started is
// a no-op.
type Queue struct {
	mu     sync.Mutex
	tasks  []Task
	closed bool
}

// Add registers a task to be run on Shutdown. Safe for concurrent use.
func (q *Queue) Add(t Task) {
	if t == nil {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.tasks = append(q.tasks, t)
}

// Shutdown drains the queue in LIFO order. If ctx ends mid-drain, Shutdown
// stops early and the context error is included in the joined result.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	var errs []error

	for i := len(tasks) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("shutdown canceled: %w", ctx.Err()))

			return errors.Join(errs...)
		default:
		}

		err := runTask(ctx, tasks[i])
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func runTask(ctx context.Context, t Task) (err error) {
	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("panic in shutdown task: %v", r)
		}
	}()

	return t(ctx)
}
