// Package analytics derives period totals and per-category breakdowns from
// the transaction store's current collection. Pure computation over a
// snapshot: nothing here caches or persists.
package analytics

import (
	"sort"
	"time"

	"spendwise/internal/core"
)

const (
	StatusOnTrack  = "on-track"
	StatusWarning  = "warning"
	StatusExceeded = "exceeded"
)

type (
	// Lister is the slice of the store the aggregator needs.
	Lister interface {
		List(filter *core.Filter) []core.Transaction
	}

	CategoryStatistic struct {
		CategoryID string
		Amount     core.Money
		Count      int
		Percentage float64 // share of total expense, 0 when there is none
	}

	PeriodStats struct {
		TotalIncome        core.Money
		TotalExpense       core.Money
		NetAmount          core.Money
		TransactionCount   int
		CategoryStatistics []CategoryStatistic
	}

	Comparison struct {
		Current          PeriodStats
		Previous         PeriodStats
		ChangePercentage float64
	}

	BudgetProgress struct {
		CategoryID   string
		BudgetAmount core.Money
		SpentAmount  core.Money
		Percentage   float64
		Status       string
	}

	Aggregator struct {
		store     Lister
		weekStart time.Weekday
		now       func() time.Time
	}
)

func New(store Lister) *Aggregator {
	return &Aggregator{store: store, weekStart: time.Sunday, now: time.Now}
}

// WithWeekStart changes the first day of the week used for weekly periods.
func (a *Aggregator) WithWeekStart(d time.Weekday) *Aggregator {
	a.weekStart = d
	return a
}

// PeriodStats computes totals and the expense category breakdown for a
// concrete date interval.
func (a *Aggregator) PeriodStats(r core.DateRange) PeriodStats {
	txs := a.store.List(&core.Filter{StartDate: &r.Start, EndDate: &r.End})

	var stats PeriodStats
	stats.TransactionCount = len(txs)

	type bucket struct {
		amount int64
		count  int
	}
	byCategory := map[string]*bucket{}

	for _, t := range txs {
		switch t.Type {
		case core.Income:
			stats.TotalIncome.Cents += t.Amount.Cents
		case core.Expense:
			stats.TotalExpense.Cents += t.Amount.Cents
			b := byCategory[t.CategoryID]
			if b == nil {
				b = &bucket{}
				byCategory[t.CategoryID] = b
			}
			b.amount += t.Amount.Cents
			b.count++
		}
	}
	stats.NetAmount.Cents = stats.TotalIncome.Cents - stats.TotalExpense.Cents

	for id, b := range byCategory {
		cs := CategoryStatistic{
			CategoryID: id,
			Amount:     core.Money{Cents: b.amount},
			Count:      b.count,
		}
		if stats.TotalExpense.Cents > 0 {
			cs.Percentage = 100 * float64(b.amount) / float64(stats.TotalExpense.Cents)
		}
		stats.CategoryStatistics = append(stats.CategoryStatistics, cs)
	}
	sort.Slice(stats.CategoryStatistics, func(i, j int) bool {
		a, b := stats.CategoryStatistics[i], stats.CategoryStatistics[j]
		if a.Amount.Cents != b.Amount.Cents {
			return a.Amount.Cents > b.Amount.Cents
		}
		return a.CategoryID < b.CategoryID
	})

	return stats
}

// PeriodStatsFor resolves a period kind against the current time.
func (a *Aggregator) PeriodStatsFor(p core.Period) PeriodStats {
	return a.PeriodStats(core.RangeFor(p, a.now(), a.weekStart))
}

// ComparisonStats computes the current and immediately preceding period of
// the same kind. ChangePercentage is 0 when the previous period had no
// expenses, which also masks a from-zero spike as 0%.
func (a *Aggregator) ComparisonStats(p core.Period) Comparison {
	now := a.now()
	current := a.PeriodStats(core.RangeFor(p, now, a.weekStart))
	previous := a.PeriodStats(core.PreviousRangeFor(p, now, a.weekStart))

	var change float64
	if previous.TotalExpense.Cents > 0 {
		change = 100 * float64(current.TotalExpense.Cents-previous.TotalExpense.Cents) /
			float64(previous.TotalExpense.Cents)
	}
	return Comparison{Current: current, Previous: previous, ChangePercentage: change}
}

// BudgetProgressFor reports current-month spend against each monthly budget.
func (a *Aggregator) BudgetProgressFor(budgets []core.Budget) []BudgetProgress {
	month := core.MonthRange(a.now())

	var out []BudgetProgress
	for _, b := range budgets {
		if b.Period != core.Monthly || b.Amount.Cents <= 0 {
			continue
		}

		spent := int64(0)
		for _, t := range a.store.List(&core.Filter{
			Type:        core.Expense,
			CategoryIDs: []string{b.CategoryID},
			StartDate:   &month.Start,
			EndDate:     &month.End,
		}) {
			spent += t.Amount.Cents
		}

		pct := 100 * float64(spent) / float64(b.Amount.Cents)
		status := StatusOnTrack
		switch {
		case pct >= 100:
			status = StatusExceeded
		case pct >= 80:
			status = StatusWarning
		}

		out = append(out, BudgetProgress{
			CategoryID:   b.CategoryID,
			BudgetAmount: b.Amount,
			SpentAmount:  core.Money{Cents: spent},
			Percentage:   pct,
			Status:       status,
		})
	}
	return out
}
