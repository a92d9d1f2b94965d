package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"spendwise/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sample(id string, cents int64) core.Transaction {
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	return core.Transaction{
		ID:          id,
		Type:        core.Expense,
		Amount:      core.Money{Cents: cents},
		CategoryID:  "food",
		Description: "lunch",
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestUpsertAndLoadAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Upsert(ctx, sample("1", 5000)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Overwrite by id
	tx := sample("1", 7500)
	if err := repo.Upsert(ctx, tx); err != nil {
		t.Fatalf("upsert overwrite: %v", err)
	}

	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Amount.Cents != 7500 {
		t.Fatalf("unexpected collection: %+v", got)
	}
}

func TestReplaceAllAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Upsert(ctx, sample("stale", 100)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := repo.ReplaceAll(ctx, []core.Transaction{sample("1", 5000), sample("2", 3000)}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 after replace, got %d", len(got))
	}

	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "missing"); err != nil {
		t.Fatalf("deleting absent id should not error: %v", err)
	}

	got, _ = repo.LoadAll(ctx)
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("unexpected collection after delete: %+v", got)
	}
}

func TestClear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	repo.Upsert(ctx, sample("1", 5000))
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, _ := repo.LoadAll(ctx)
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %+v", got)
	}
}
