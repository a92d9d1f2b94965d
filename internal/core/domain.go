package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DefaultDescription is used when a draft arrives with an empty description.
const DefaultDescription = "Expense"

type (
	TransactionType string

	Money struct {
		Cents int64
	}

	// Transaction is the central entity. ID is server-assigned once persisted;
	// drafts carry a client-generated placeholder until then.
	Transaction struct {
		ID          string
		Type        TransactionType
		Amount      Money
		CategoryID  string
		Description string
		Date        time.Time // user-editable, distinct from the audit timestamps
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}

	// Draft is the caller-supplied shape for a new transaction.
	Draft struct {
		Type        TransactionType
		Amount      Money
		CategoryID  string
		Description string
		Date        time.Time // zero means "now"
	}

	// Patch is a partial-field update. Nil fields are left untouched.
	Patch struct {
		Type        *TransactionType
		Amount      *Money
		CategoryID  *string
		Description *string
		Date        *time.Time
	}

	Budget struct {
		ID         string
		CategoryID string
		Amount     Money
		Period     Period
		StartDate  time.Time
		CreatedAt  time.Time
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidDate   = errors.New("invalid date")
	ErrNotFound      = errors.New("transaction not found")
	ErrEmptyPatch    = errors.New("empty patch")
)

func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	}
	return ErrInvalidType
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (d Draft) Validate() error {
	if err := d.Type.Validate(); err != nil {
		return err
	}
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(d.CategoryID) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// DescriptionOrDefault returns the draft description, falling back to the
// placeholder when the caller left it empty.
func (d Draft) DescriptionOrDefault() string {
	if s := strings.TrimSpace(d.Description); s != "" {
		return s
	}
	return DefaultDescription
}

func (p Patch) Validate() error {
	if p.Type == nil && p.Amount == nil && p.CategoryID == nil && p.Description == nil && p.Date == nil {
		return ErrEmptyPatch
	}
	if p.Type != nil {
		if err := p.Type.Validate(); err != nil {
			return err
		}
	}
	if p.Amount != nil {
		if err := p.Amount.Validate(); err != nil {
			return err
		}
	}
	if p.CategoryID != nil && strings.TrimSpace(*p.CategoryID) == "" {
		return ErrEmptyCategory
	}
	if p.Date != nil && p.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// ApplyTo merges the patch into a copy of t and stamps UpdatedAt.
func (p Patch) ApplyTo(t Transaction, now time.Time) Transaction {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	t.UpdatedAt = now
	return t
}

// Signed returns the transaction's contribution to a running balance:
// income adds, expense subtracts.
func (t Transaction) Signed() int64 {
	if t.Type == Expense {
		return -t.Amount.Cents
	}
	return t.Amount.Cents
}
