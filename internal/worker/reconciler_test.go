package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingFetcher struct {
	calls atomic.Int64
	err   error
}

func (f *countingFetcher) FetchAll(context.Context, int64) error {
	f.calls.Add(1)
	return f.err
}

func TestReconcilerFetchesOnStartAndOnTick(t *testing.T) {
	fetcher := &countingFetcher{}
	r := NewReconciler(fetcher, Config{Interval: 10 * time.Millisecond, UserID: 7})

	ctx := context.Background()
	if err := r.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for fetcher.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if err := r.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if got := fetcher.calls.Load(); got < 2 {
		t.Fatalf("expected at least 2 fetches, got %d", got)
	}
}

func TestReconcilerSurvivesFetchErrors(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("network down")}
	r := NewReconciler(fetcher, Config{Interval: 5 * time.Millisecond, UserID: 7})

	ctx := context.Background()
	if err := r.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for fetcher.calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if err := r.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if got := fetcher.calls.Load(); got < 3 {
		t.Fatalf("loop should keep running through errors, got %d fetches", got)
	}
}

func TestReconcilerDoubleStart(t *testing.T) {
	r := NewReconciler(&countingFetcher{}, DefaultConfig(1))
	ctx := context.Background()

	if err := r.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := r.Start(ctx); err == nil {
		t.Fatalf("second start must fail")
	}
	if !r.IsRunning() {
		t.Fatalf("should be running")
	}
	r.Stop(ctx)
	if r.IsRunning() {
		t.Fatalf("should be stopped")
	}
}
