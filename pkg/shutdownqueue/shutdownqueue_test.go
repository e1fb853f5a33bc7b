package shutdownqueue

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}

func TestLIFOOrder(t *testing.T) {
	t.Parallel()

	var (
		q     Queue
		order []int
	)

	makeTask := func(n int) Task {
		return func(ctx context.Context) error {
			order = append(order, n)

			return nil
		}
	}

	for i := 1; i <= 3; i++ {
		q.Add(makeTask(i))
	}

	err := q.Shutdown(testContext(t))
	if err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}

	want := []int{3, 2, 1}
	if len(order) != len(want) {
		t.Fatalf("order len mismatch: got %v, want %v", order, want)
	}

	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, order, want)
		}
	}
}

func TestAddNilTaskIsNoOp(t *testing.T) {
	t.Parallel()

	var q Queue

	q.Add(nil)

	err := q.Shutdown(testContext(t))
	if err != nil {
		t.Fatalf("expected nil after adding nil task; got %v", err)
	}
}

func TestPanicRecoveryIncludedAndContinues(t *testing.T) {
	t.Parallel()

	var (
		q             Queue
		ranAfterPanic bool
	)

	q.Add(func(ctx context.Context) error {
		ranAfterPanic = true

		return nil
	})
	q.Add(func(ctx context.Context) error {
		panic("boom")
	})

	err := q.Shutdown(testContext(t))
	if err == nil {
		t.Fatalf("expected aggregated error with panic; got nil")
	}

	if !strings.Contains(err.Error(), "panic in shutdown task: boom") {
		t.Fatalf("expected panic message in error; got: %q", err.Error())
	}

	if !ranAfterPanic {
		t.Fatalf("expected tasks after the panic to still run")
	}
}

func TestTaskErrorsAreJoinedAndDetectable(t *testing.T) {
	t.Parallel()

	var q Queue

	err1 := errors.New("alpha")
	err2 := errors.New("beta")

	q.Add(func(ctx context.Context) error { return err1 })
	q.Add(func(ctx context.Context) error { return err2 })

	err := q.Shutdown(testContext(t))
	if err == nil {
		t.Fatalf("expected joined error; got nil")
	}

	if !errors.Is(err, err1) || !errors.Is(err, err2) {
		t.Fatalf("expected joined error to contain both; got: %v", err)
	}
}

func TestIdempotentAndRunsOnce(t *testing.T) {
	t.Parallel()

	var (
		q     Queue
		count atomic.Int32
	)

	q.Add(func(ctx context.Context) error {
		count.Add(1)

		return nil
	})

	ctx, cancel := context.WithTimeout(testContext(t), time.Second)
	defer cancel()

	err := q.Shutdown(ctx)
	if err != nil {
		t.Fatalf("Shutdown #1 error: %v", err)
	}

	err = q.Shutdown(ctx)
	if err != nil {
		t.Fatalf("Shutdown #2 expected nil; got %v", err)
	}

	if got := count.Load(); got != 1 {
		t.Fatalf("expected task to run exactly once; ran %d times", got)
	}
}

func TestAddAfterShutdownIsNoOp(t *testing.T) {
	t.Parallel()

	var q Queue

	err := q.Shutdown(testContext(t))
	if err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}

	var ran bool

	q.Add(func(ctx context.Context) error {
		ran = true

		return nil
	})

	err = q.Shutdown(testContext(t))
	if err != nil {
		t.Fatalf("Shutdown #2 error: %v", err)
	}

	if ran {
		t.Fatalf("task added after shutdown should not run")
	}
}

func TestCanceledContextStopsDrain(t *testing.T) {
	t.Parallel()

	var (
		q    Queue
		ranA bool
	)

	q.Add(func(ctx context.Context) error {
		ranA = true

		return nil
	})

	ctx, cancel := context.WithCancel(testContext(t))
	cancel() // already canceled before the drain starts

	err := q.Shutdown(ctx)
	if err == nil {
		t.Fatalf("expected error due to context cancel; got nil")
	}

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected errors.Is(err, context.Canceled); got: %v", err)
	}

	if ranA {
		t.Fatalf("expected no task to run after cancel")
	}
}
