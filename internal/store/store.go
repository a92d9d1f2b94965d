// Package store owns the in-memory transaction collection for a session and
// mediates between callers and the remote expense service.
//
// Create is pessimistic: the collection changes only after the server
// confirms. Update and delete apply locally first and keep the local
// mutation even when the remote call fails; the failure is recorded on the
// store's error field and callers recover consistency with a re-fetch.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"spendwise/internal/api"
	"spendwise/internal/category"
	"spendwise/internal/core"
	"spendwise/internal/events"
)

type Store struct {
	remote RemoteAPI
	local  LocalRepository // optional
	events ChangePublisher // optional

	mu           sync.Mutex
	transactions []core.Transaction
	isLoading    bool
	lastErr      error
	userID       int64

	now func() time.Time
}

func New(remote RemoteAPI, local LocalRepository, publisher ChangePublisher) *Store {
	return &Store{
		remote: remote,
		local:  local,
		events: publisher,
		now:    time.Now,
	}
}

// Restore loads the persisted collection. Call once at startup, before any
// remote sync.
func (s *Store) Restore(ctx context.Context) error {
	if s.local == nil {
		return nil
	}
	txs, err := s.local.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("restore collection: %w", err)
	}

	s.mu.Lock()
	s.transactions = txs
	s.mu.Unlock()

	slog.InfoContext(ctx, "Restored local collection", "count", len(txs))
	return nil
}

// FetchAll replaces the collection with the server's current list for the
// user. On failure the previous collection is left untouched.
func (s *Store) FetchAll(ctx context.Context, userID int64) error {
	s.setLoading(true)
	defer s.setLoading(false)

	records, err := s.remote.ListExpenses(ctx, userID)
	if err != nil {
		s.recordError(err)
		return err
	}

	txs := make([]core.Transaction, 0, len(records))
	for _, rec := range records {
		txs = append(txs, s.fromServerRecord(ctx, rec))
	}

	s.mu.Lock()
	s.transactions = txs
	s.lastErr = nil
	s.userID = userID
	s.mu.Unlock()

	s.persistAll(ctx, txs)
	return nil
}

// Create validates the draft, sends it to the server and prepends the
// server-confirmed transaction. No optimistic insert: on failure the
// collection is unchanged.
func (s *Store) Create(ctx context.Context, draft core.Draft, userID int64) (core.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.setLoading(true)
	defer s.setLoading(false)

	date := draft.Date
	if date.IsZero() {
		date = s.now()
	}

	rec, err := s.remote.CreateExpense(ctx, api.CreateExpenseRequest{
		Amount:      draft.Amount.Float(),
		Description: draft.DescriptionOrDefault(),
		CategoryID:  s.toServerCategory(ctx, draft.CategoryID),
		UserID:      userID,
		CreatedAt:   date.Format(time.RFC3339),
	})
	if err != nil {
		s.recordError(err)
		return core.Transaction{}, err
	}

	tx := s.fromServerRecord(ctx, rec)
	tx.Type = draft.Type

	s.mu.Lock()
	s.transactions = append([]core.Transaction{tx}, s.transactions...)
	s.lastErr = nil
	s.userID = userID
	s.mu.Unlock()

	s.persistOne(ctx, tx)
	s.publish(ctx, events.OpCreated, tx.ID)
	return tx, nil
}

// Update applies the patch locally first, then pushes the merged field
// values to the server. A remote failure is recorded but the local patch
// stands; re-fetch to restore authoritative state.
func (s *Store) Update(ctx context.Context, id string, patch core.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return core.ErrNotFound
	}
	merged := patch.ApplyTo(s.transactions[idx], s.now())
	s.transactions[idx] = merged
	userID := s.userID
	s.mu.Unlock()

	s.persistOne(ctx, merged)

	s.setLoading(true)
	defer s.setLoading(false)

	serverID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		err = fmt.Errorf("transaction %s has no server id", id)
		s.recordError(err)
		return err
	}

	err = s.remote.UpdateExpense(ctx, serverID, api.UpdateExpenseRequest{
		Amount:      merged.Amount.Float(),
		Description: merged.Description,
		CategoryID:  s.toServerCategory(ctx, merged.CategoryID),
		UserID:      userID,
	})
	if err != nil {
		s.recordError(err)
		return err
	}

	s.clearError()
	s.publish(ctx, events.OpUpdated, id)
	return nil
}

// Delete removes the transaction locally first, then issues the server
// delete. The local removal stands even when the remote call fails.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return core.ErrNotFound
	}
	s.transactions = append(s.transactions[:idx], s.transactions[idx+1:]...)
	s.mu.Unlock()

	if s.local != nil {
		if err := s.local.Delete(ctx, id); err != nil {
			slog.WarnContext(ctx, "Failed to remove transaction from local storage", "id", id, "error", err)
		}
	}

	s.setLoading(true)
	defer s.setLoading(false)

	serverID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		err = fmt.Errorf("transaction %s has no server id", id)
		s.recordError(err)
		return err
	}

	if err := s.remote.DeleteExpense(ctx, serverID); err != nil {
		s.recordError(err)
		return err
	}

	s.clearError()
	s.publish(ctx, events.OpDeleted, id)
	return nil
}

// List returns the collection, narrowed by the filter when given.
func (s *Store) List(filter *core.Filter) []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if filter == nil || filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the transaction with the given id, if present.
func (s *Store) Get(id string) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.transactions[idx], true
	}
	return core.Transaction{}, false
}

// Clear empties the local collection. No server call.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.transactions = nil
	s.mu.Unlock()

	if s.local != nil {
		if err := s.local.Clear(ctx); err != nil {
			slog.WarnContext(ctx, "Failed to clear local storage", "error", err)
		}
	}
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// LastError returns the most recent remote failure, or nil after the last
// successful remote operation.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// indexOf must be called with the mutex held.
func (s *Store) indexOf(id string) int {
	for i, t := range s.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.isLoading = v
	s.mu.Unlock()
}

func (s *Store) recordError(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

func (s *Store) clearError() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
}

// toServerCategory translates a slug, logging when the fallback bucket was
// used so silent misclassification stays observable.
func (s *Store) toServerCategory(ctx context.Context, slug string) int64 {
	id, known := category.LookupServerID(slug)
	if !known {
		slog.WarnContext(ctx, "Unknown category, using fallback",
			"category_id", slug, "server_id", id)
	}
	return id
}

// fromServerRecord maps a server expense into the client transaction shape.
// The server timestamp populates the date and both audit fields.
func (s *Store) fromServerRecord(ctx context.Context, rec api.ExpenseRecord) core.Transaction {
	slug, known := category.LookupClientSlug(rec.CategoryID)
	if !known {
		slog.WarnContext(ctx, "Unknown server category, using fallback",
			"server_id", rec.CategoryID, "category_id", slug)
	}

	ts := parseServerTime(rec.CreatedAt, s.now)
	return core.Transaction{
		ID:          strconv.FormatInt(rec.ID, 10),
		Type:        core.Expense,
		Amount:      core.MoneyFromFloat(rec.Amount),
		CategoryID:  slug,
		Description: rec.Description,
		Date:        ts,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

var serverTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseServerTime(s string, now func() time.Time) time.Time {
	for _, layout := range serverTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now()
}

func (s *Store) persistAll(ctx context.Context, txs []core.Transaction) {
	if s.local == nil {
		return
	}
	if err := s.local.ReplaceAll(ctx, txs); err != nil {
		slog.WarnContext(ctx, "Failed to persist collection", "error", err)
	}
}

func (s *Store) persistOne(ctx context.Context, t core.Transaction) {
	if s.local == nil {
		return
	}
	if err := s.local.Upsert(ctx, t); err != nil {
		slog.WarnContext(ctx, "Failed to persist transaction", "id", t.ID, "error", err)
	}
}

// publish is non-blocking for the caller's outcome: a broker failure is
// logged, never surfaced.
func (s *Store) publish(ctx context.Context, op, id string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishChange(ctx, op, id); err != nil {
		slog.WarnContext(ctx, "Failed to publish change event", "op", op, "id", id, "error", err)
	}
}
