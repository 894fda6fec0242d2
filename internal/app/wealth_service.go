package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"dashboard/internal/domain"
	"dashboard/internal/events"
)

// ResourceWealth is the live-subscription topic for financial entry changes.
const ResourceWealth = "wealth"

// WealthService encapsulates financial-entry and snapshot use cases.
type WealthService struct {
	repo domain.WealthRepository
	hub  *events.Hub
}

// NewWealthService creates a WealthService backed by the given repository.
func NewWealthService(repo domain.WealthRepository, hub *events.Hub) *WealthService {
	return &WealthService{repo: repo, hub: hub}
}

// AddEntry validates and stores one financial entry.
func (s *WealthService) AddEntry(ctx context.Context, e domain.FinancialEntry) (int64, error) {
	if !domain.ValidEntryCategory(e.Category) {
		return 0, fmt.Errorf("%w: category must be income, expense or subscription", ErrValidation)
	}
	if e.OccurredOn.IsZero() {
		e.OccurredOn = time.Now()
	}
	id, err := s.repo.AddEntry(ctx, e)
	if err != nil {
		return 0, err
	}
	s.hub.Publish(ResourceWealth)
	return id, nil
}

// ImportResult summarises a CSV statement import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped,omitempty"`
}

// ImportCSV bulk-imports financial entries from a statement. The expected
// header is date,amount,category,description with dates as YYYY-MM-DD.
// Malformed rows are reported in the result and not inserted; every
// well-formed row produces exactly one entry.
func (s *WealthService) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: empty or unreadable CSV", ErrValidation)
	}
	cols, err := statementColumns(header)
	if err != nil {
		return ImportResult{}, err
	}

	var (
		entries []domain.FinancialEntry
		skipped []string
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		entry, err := statementEntry(record, cols)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		entries = append(entries, entry)
	}

	n, err := s.repo.AddEntries(ctx, entries)
	if err != nil {
		return ImportResult{}, err
	}
	if n > 0 {
		s.hub.Publish(ResourceWealth)
	}
	return ImportResult{Imported: n, Skipped: skipped}, nil
}

// ListRecent returns the most recent financial entries, newest first.
func (s *WealthService) ListRecent(ctx context.Context, limit int) ([]domain.FinancialEntry, error) {
	return s.repo.ListRecentEntries(ctx, limit)
}

// Snapshots returns the wealth-over-time chart series, oldest first.
func (s *WealthService) Snapshots(ctx context.Context) ([]domain.WealthSnapshot, error) {
	return s.repo.ListSnapshots(ctx)
}

type columnIndex struct {
	date, amount, category, description int
}

func statementColumns(header []string) (columnIndex, error) {
	cols := columnIndex{date: -1, amount: -1, category: -1, description: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			cols.date = i
		case "amount":
			cols.amount = i
		case "category":
			cols.category = i
		case "description":
			cols.description = i
		}
	}
	if cols.date < 0 || cols.amount < 0 || cols.category < 0 {
		return cols, fmt.Errorf("%w: CSV header needs date, amount and category columns", ErrValidation)
	}
	return cols, nil
}

func statementEntry(record []string, cols columnIndex) (domain.FinancialEntry, error) {
	var e domain.FinancialEntry
	if len(record) <= cols.date || len(record) <= cols.amount || len(record) <= cols.category {
		return e, fmt.Errorf("too few fields")
	}

	day, err := time.Parse("2006-01-02", strings.TrimSpace(record[cols.date]))
	if err != nil {
		return e, fmt.Errorf("bad date %q", record[cols.date])
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(record[cols.amount]), 64)
	if err != nil {
		return e, fmt.Errorf("bad amount %q", record[cols.amount])
	}
	category := strings.ToLower(strings.TrimSpace(record[cols.category]))
	if !domain.ValidEntryCategory(category) {
		return e, fmt.Errorf("bad category %q", record[cols.category])
	}

	e = domain.FinancialEntry{OccurredOn: day, Amount: amount, Category: category}
	if cols.description >= 0 && len(record) > cols.description {
		e.Description = strings.TrimSpace(record[cols.description])
	}
	return e, nil
}
