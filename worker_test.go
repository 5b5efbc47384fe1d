package bm25index

import (
	"context"
	"testing"
	"time"
)

func testState(t *testing.T) *indexState {
	t.Helper()
	state, err := newIndexState([]Input{TextInput("fox dog")}, DefaultBuildOptions(), testLogger())
	if err != nil {
		t.Fatalf("newIndexState() error = %v", err)
	}
	return state
}

func TestWorkerEnsureSpawnedIdempotent(t *testing.T) {
	w := newWorker(testLogger())
	defer w.dispose()
	state := testState(t)
	ctx := context.Background()

	if err := w.ensureSpawned(ctx, state); err != nil {
		t.Fatalf("ensureSpawned() error = %v", err)
	}
	if err := w.ensureSpawned(ctx, state); err != nil {
		t.Fatalf("second ensureSpawned() error = %v", err)
	}
}

func TestWorkerSubmitRunsAgainstState(t *testing.T) {
	w := newWorker(testLogger())
	defer w.dispose()
	state := testState(t)
	ctx := context.Background()

	if err := w.ensureSpawned(ctx, state); err != nil {
		t.Fatalf("ensureSpawned() error = %v", err)
	}

	result, err := w.submit(ctx, func(s *indexState) any {
		return len(s.docs)
	})
	if err != nil {
		t.Fatalf("submit() error = %v", err)
	}
	if result.(int) != 1 {
		t.Errorf("result = %v, want 1", result)
	}
}

func TestWorkerDisposeIsIdempotent(t *testing.T) {
	w := newWorker(testLogger())
	w.dispose()
	w.dispose()
}

func TestWorkerSubmitAfterDisposeFails(t *testing.T) {
	w := newWorker(testLogger())
	state := testState(t)
	ctx := context.Background()

	if err := w.ensureSpawned(ctx, state); err != nil {
		t.Fatalf("ensureSpawned() error = %v", err)
	}
	w.dispose()

	_, err := w.submit(ctx, func(s *indexState) any { return nil })
	if err != ErrDisposed && err != ErrCancelled {
		t.Errorf("submit() after dispose error = %v, want ErrDisposed or ErrCancelled", err)
	}
}

func TestWorkerDisposeCancelsMidSpawn(t *testing.T) {
	w := newWorker(testLogger())
	state := testState(t)

	go func() {
		time.Sleep(5 * time.Millisecond)
		w.dispose()
	}()

	err := w.ensureSpawned(context.Background(), state)
	if err != nil && err != ErrCancelled {
		t.Errorf("ensureSpawned() during racing dispose = %v, want nil or ErrCancelled", err)
	}
}
