// Package worker runs the periodic reconciler. A failed optimistic update or
// delete leaves the local collection ahead of (or behind) the server; the
// reconciler closes that window by re-fetching the authoritative list on an
// interval.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Fetcher is the slice of the transaction store the reconciler drives.
type Fetcher interface {
	FetchAll(ctx context.Context, userID int64) error
}

type Config struct {
	// Interval between re-fetches (default: 5m)
	Interval time.Duration
	// UserID whose collection is reconciled
	UserID int64
}

func DefaultConfig(userID int64) Config {
	return Config{Interval: 5 * time.Minute, UserID: userID}
}

type Reconciler struct {
	store  Fetcher
	config Config

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func NewReconciler(store Fetcher, config Config) *Reconciler {
	if config.Interval <= 0 {
		config.Interval = 5 * time.Minute
	}
	return &Reconciler{store: store, config: config}
}

// Start begins the reconcile loop. Returns an error if already running.
func (r *Reconciler) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return fmt.Errorf("reconciler is already running")
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	r.mu.Unlock()

	go r.runLoop(ctx)

	slog.InfoContext(ctx, "Reconciler started",
		"interval", r.config.Interval,
		"user_id", r.config.UserID)
	return nil
}

// Stop gracefully stops the loop and waits for completion.
func (r *Reconciler) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	close(r.stopCh)

	select {
	case <-r.doneCh:
		slog.InfoContext(ctx, "Reconciler stopped gracefully")
	case <-ctx.Done():
		slog.WarnContext(ctx, "Reconciler stop timed out")
		return ctx.Err()
	}

	r.mu.Lock()
	r.running = false
	r.mu.Unlock()
	return nil
}

// IsRunning reports whether the loop is active.
func (r *Reconciler) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Reconciler) runLoop(ctx context.Context) {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	// Reconcile immediately on startup
	r.reconcile(ctx)

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

func (r *Reconciler) reconcile(ctx context.Context) {
	if err := r.store.FetchAll(ctx, r.config.UserID); err != nil {
		// The store keeps its previous collection on failure; just try again
		// next tick.
		slog.WarnContext(ctx, "Reconcile fetch failed", "error", err)
		return
	}
	slog.DebugContext(ctx, "Reconcile completed", "user_id", r.config.UserID)
}
