package store

import (
	"context"

	"spendwise/internal/api"
	"spendwise/internal/core"
)

// Ports for the store's collaborators. The HTTP client, the SQLite
// repository and the AMQP publisher satisfy these; tests use fakes.
type (
	RemoteAPI interface {
		CreateExpense(ctx context.Context, req api.CreateExpenseRequest) (api.ExpenseRecord, error)
		ListExpenses(ctx context.Context, userID int64) ([]api.ExpenseRecord, error)
		UpdateExpense(ctx context.Context, id int64, req api.UpdateExpenseRequest) error
		DeleteExpense(ctx context.Context, id int64) error
	}

	// LocalRepository persists the collection between sessions.
	LocalRepository interface {
		LoadAll(ctx context.Context) ([]core.Transaction, error)
		ReplaceAll(ctx context.Context, txs []core.Transaction) error
		Upsert(ctx context.Context, t core.Transaction) error
		Delete(ctx context.Context, id string) error
		Clear(ctx context.Context) error
	}

	// ChangePublisher announces confirmed mutations.
	ChangePublisher interface {
		PublishChange(ctx context.Context, op, transactionID string) error
	}
)
