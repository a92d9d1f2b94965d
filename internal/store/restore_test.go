package store

import (
	"context"
	"testing"
	"time"

	"spendwise/internal/core"
)

type fakeLocal struct {
	byID   map[string]core.Transaction
	loaded []core.Transaction
}

func newFakeLocal(txs ...core.Transaction) *fakeLocal {
	f := &fakeLocal{byID: map[string]core.Transaction{}, loaded: txs}
	for _, t := range txs {
		f.byID[t.ID] = t
	}
	return f
}

func (f *fakeLocal) LoadAll(context.Context) ([]core.Transaction, error) { return f.loaded, nil }

func (f *fakeLocal) ReplaceAll(_ context.Context, txs []core.Transaction) error {
	f.byID = map[string]core.Transaction{}
	for _, t := range txs {
		f.byID[t.ID] = t
	}
	return nil
}

func (f *fakeLocal) Upsert(_ context.Context, t core.Transaction) error {
	f.byID[t.ID] = t
	return nil
}

func (f *fakeLocal) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeLocal) Clear(context.Context) error {
	f.byID = map[string]core.Transaction{}
	return nil
}

func TestRestoreLoadsPersistedCollection(t *testing.T) {
	saved := core.Transaction{
		ID:         "9",
		Type:       core.Expense,
		Amount:     core.Money{Cents: 400},
		CategoryID: "bills",
		Date:       time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	s := New(&fakeRemote{}, newFakeLocal(saved), nil)
	s.now = fixedClock

	if err := s.Restore(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	got, ok := s.Get("9")
	if !ok || got.Amount.Cents != 400 {
		t.Fatalf("restored collection = %+v", s.List(nil))
	}
}

func TestMutationsWriteThroughToLocalStorage(t *testing.T) {
	local := newFakeLocal()
	s := New(&fakeRemote{}, local, nil)
	s.now = fixedClock

	tx, err := s.Create(context.Background(), core.Draft{
		Type: core.Expense, Amount: core.Money{Cents: 100}, CategoryID: "food",
	}, 7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := local.byID[tx.ID]; !ok {
		t.Fatalf("created transaction not persisted")
	}

	if err := s.Delete(context.Background(), tx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := local.byID[tx.ID]; ok {
		t.Fatalf("deleted transaction still persisted")
	}
}
