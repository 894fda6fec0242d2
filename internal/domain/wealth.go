package domain

import (
	"context"
	"time"
)

// Financial entry categories.
const (
	CategoryIncome       = "income"
	CategoryExpense      = "expense"
	CategorySubscription = "subscription"
)

// ValidEntryCategory reports whether s is a known financial entry category.
func ValidEntryCategory(s string) bool {
	return s == CategoryIncome || s == CategoryExpense || s == CategorySubscription
}

// FinancialEntry is a single income/expense/subscription record.
type FinancialEntry struct {
	ID          int64     `json:"id"`
	OccurredOn  time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

// WealthSnapshot is a point-in-time total wealth value. Snapshots are
// produced externally and exposed read-only for the chart series.
type WealthSnapshot struct {
	ID          int64     `json:"id"`
	Day         time.Time `json:"date"`
	TotalWealth float64   `json:"totalWealth"`
}

// WealthRepository is the port for financial entry and snapshot persistence.
type WealthRepository interface {
	AddEntry(ctx context.Context, e FinancialEntry) (int64, error)
	AddEntries(ctx context.Context, entries []FinancialEntry) (int, error)
	ListRecentEntries(ctx context.Context, limit int) ([]FinancialEntry, error)
	ListSnapshots(ctx context.Context) ([]WealthSnapshot, error)
}
