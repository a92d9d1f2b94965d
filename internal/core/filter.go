package core

import (
	"strings"
	"time"
)

// TypeAll bypasses the type predicate in a filter.
const TypeAll TransactionType = "all"

// Filter narrows a transaction listing. All active predicates must hold
// (AND semantics); zero-value fields are inactive.
type Filter struct {
	Type        TransactionType // exact match; empty or TypeAll bypasses
	CategoryIDs []string        // set membership
	StartDate   *time.Time      // inclusive, snapped to start of day
	EndDate     *time.Time      // inclusive, snapped to end of day
	MinAmount   *Money          // inclusive
	MaxAmount   *Money          // inclusive
	SearchQuery string          // case-insensitive substring on description or category id
}

// Matches reports whether t passes every active predicate.
func (f Filter) Matches(t Transaction) bool {
	if f.Type != "" && f.Type != TypeAll && t.Type != f.Type {
		return false
	}
	if len(f.CategoryIDs) > 0 {
		found := false
		for _, id := range f.CategoryIDs {
			if id == t.CategoryID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.StartDate != nil && t.Date.Before(StartOfDay(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && t.Date.After(EndOfDay(*f.EndDate)) {
		return false
	}
	if f.MinAmount != nil && t.Amount.Cents < f.MinAmount.Cents {
		return false
	}
	if f.MaxAmount != nil && t.Amount.Cents > f.MaxAmount.Cents {
		return false
	}
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(t.Description), q) &&
			!strings.Contains(strings.ToLower(t.CategoryID), q) {
			return false
		}
	}
	return true
}
