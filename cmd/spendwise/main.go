package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"spendwise/internal/analytics"
	"spendwise/internal/api"
	"spendwise/internal/category"
	"spendwise/internal/config"
	"spendwise/internal/core"
	"spendwise/internal/storage"
	"spendwise/internal/store"
)

func main() {
	// Load .env for local development (ignore errors in production)
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open local database", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	client, err := api.NewClient(cfg.APIBaseURL, nil)
	if err != nil {
		logger.Error("Failed to build API client", "error", err)
		os.Exit(1)
	}

	st := store.New(client, repo, nil)
	if err := st.Restore(ctx); err != nil {
		logger.Warn("Could not restore local collection", "error", err)
	}

	if err := st.FetchAll(ctx, cfg.UserID); err != nil {
		// Work from the restored snapshot when the server is unreachable.
		fmt.Fprintf(os.Stderr, "warning: could not reach server (%v), showing local data\n", err)
	}

	printMonthSummary(st, cfg)
}

func printMonthSummary(st *store.Store, cfg *config.Config) {
	agg := analytics.New(st).WithWeekStart(cfg.WeekStart)
	stats := agg.PeriodStatsFor(core.Monthly)
	cur := category.CurrencyByCode(cfg.CurrencyCode)

	now := time.Now()
	fmt.Printf("Summary for %s %d\n\n", now.Month(), now.Year())
	fmt.Printf("  Income:       %s\n", cur.Format(stats.TotalIncome))
	fmt.Printf("  Expenses:     %s\n", cur.Format(stats.TotalExpense))
	fmt.Printf("  Net:          %s\n", cur.Format(stats.NetAmount))
	fmt.Printf("  Transactions: %d\n", stats.TransactionCount)

	if len(stats.CategoryStatistics) > 0 {
		fmt.Println("\n  Spending by category:")
		for _, cs := range stats.CategoryStatistics {
			meta := category.Lookup(cs.CategoryID)
			fmt.Printf("    %-20s %12s  %5.1f%%\n", meta.Name, cur.Format(cs.Amount), cs.Percentage)
		}
	}

	cmp := agg.ComparisonStats(core.Monthly)
	if cmp.Previous.TotalExpense.Cents > 0 {
		fmt.Printf("\n  Change vs last month: %+.1f%%\n", cmp.ChangePercentage)
	}
}
