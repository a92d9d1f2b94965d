// Package storage persists the transaction collection to a local SQLite
// database so it can be restored at startup before any remote sync.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"spendwise/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadAll returns the persisted collection, newest date first.
func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, amount_cents, category_id, description, date, created_at, updated_at
		FROM transactions
		ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var t core.Transaction
		var typ string
		var date, created, updated time.Time
		if err := rows.Scan(&t.ID, &typ, &t.Amount.Cents, &t.CategoryID, &t.Description, &date, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = core.TransactionType(typ)
		t.Date = date
		t.CreatedAt = created
		t.UpdatedAt = updated
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// ReplaceAll swaps the whole persisted collection in one transaction; used
// after a full fetch from the server.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, txs []core.Transaction) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	for _, t := range txs {
		if err := upsertIn(ctx, dbTx, t); err != nil {
			return err
		}
	}
	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}

	slog.DebugContext(ctx, "Local collection replaced", "count", len(txs))
	return nil
}

// Upsert writes a single transaction, inserting or overwriting by id.
func (r *SQLiteRepository) Upsert(ctx context.Context, t core.Transaction) error {
	return upsertIn(ctx, r.db, t)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertIn(ctx context.Context, db execer, t core.Transaction) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO transactions (id, type, amount_cents, category_id, description, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			amount_cents = excluded.amount_cents,
			category_id = excluded.category_id,
			description = excluded.description,
			date = excluded.date,
			updated_at = excluded.updated_at`,
		t.ID, string(t.Type), t.Amount.Cents, t.CategoryID, t.Description, t.Date, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert transaction %s: %w", t.ID, err)
	}
	return nil
}

// Delete removes a transaction by id. Deleting an absent id is not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return nil
}

// Clear empties the persisted collection.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	slog.InfoContext(ctx, "Local collection cleared")
	return nil
}
