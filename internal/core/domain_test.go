package core

import (
	"errors"
	"testing"
	"time"
)

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -500}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestDraftValidate(t *testing.T) {
	good := Draft{
		Type:       Expense,
		Amount:     Money{Cents: 1250},
		CategoryID: "food",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		d    Draft
		want error
	}{
		{Draft{Type: "transfer", Amount: Money{Cents: 1}, CategoryID: "food"}, ErrInvalidType},
		{Draft{Type: Expense, Amount: Money{Cents: 0}, CategoryID: "food"}, ErrInvalidAmount},
		{Draft{Type: Income, Amount: Money{Cents: 1}, CategoryID: "  "}, ErrEmptyCategory},
	}
	for i, tc := range bads {
		if err := tc.d.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestDraftDescriptionOrDefault(t *testing.T) {
	if got := (Draft{Description: "coffee"}).DescriptionOrDefault(); got != "coffee" {
		t.Fatalf("got %q", got)
	}
	if got := (Draft{Description: "   "}).DescriptionOrDefault(); got != DefaultDescription {
		t.Fatalf("got %q, want placeholder", got)
	}
}

func TestPatchValidate(t *testing.T) {
	if err := (Patch{}).Validate(); !errors.Is(err, ErrEmptyPatch) {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}

	neg := Money{Cents: -5}
	if err := (Patch{Amount: &neg}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	desc := "groceries"
	if err := (Patch{Description: &desc}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
}

func TestPatchApplyTo(t *testing.T) {
	orig := Transaction{
		ID:          "42",
		Type:        Expense,
		Amount:      Money{Cents: 5000},
		CategoryID:  "food",
		Description: "lunch",
		Date:        time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
	}
	amount := Money{Cents: 7500}
	cat := "transport"
	now := time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC)

	got := Patch{Amount: &amount, CategoryID: &cat}.ApplyTo(orig, now)

	if got.Amount.Cents != 7500 || got.CategoryID != "transport" {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Description != "lunch" || got.Type != Expense {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Fatalf("UpdatedAt not stamped: %v", got.UpdatedAt)
	}
	if orig.Amount.Cents != 5000 {
		t.Fatalf("original mutated")
	}
}

func TestTransactionSigned(t *testing.T) {
	if got := (Transaction{Type: Income, Amount: Money{Cents: 100}}).Signed(); got != 100 {
		t.Fatalf("income signed = %d", got)
	}
	if got := (Transaction{Type: Expense, Amount: Money{Cents: 100}}).Signed(); got != -100 {
		t.Fatalf("expense signed = %d", got)
	}
}
