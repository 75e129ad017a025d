package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/expense-tracker/internal/logger"
	"github.com/sbilibin2017/expense-tracker/internal/models"
)

// Error variables
var (
	ErrMissingDateRange = errors.New("start date and end date are required for custom filter")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// Time-window filter selectors for expense listings.
const (
	FilterPastWeek    = 0
	FilterPastMonth   = 1
	FilterPast3Months = 2
	FilterCustom      = 3
)

// ResolveWindow maps a filter selector to a concrete [from, to] window.
// Selectors 0-2 are fixed windows ending now; 3 is a custom window and
// requires both bounds with start <= end. Any other selector, including
// a missing one, deliberately means all time.
func ResolveWindow(now time.Time, filter *int, startDate, endDate *time.Time) (time.Time, time.Time, error) {
	from := time.Unix(0, 0).UTC()
	to := now

	if filter == nil {
		return from, to, nil
	}

	switch *filter {
	case FilterPastWeek:
		from = now.AddDate(0, 0, -7)
	case FilterPastMonth:
		from = now.AddDate(0, -1, 0)
	case FilterPast3Months:
		from = now.AddDate(0, -3, 0)
	case FilterCustom:
		if startDate == nil || endDate == nil {
			return time.Time{}, time.Time{}, ErrMissingDateRange
		}
		if startDate.After(*endDate) {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		from = *startDate
		to = *endDate
	default:
		// Unrecognized selector means all time, same as no selector.
	}

	return from, to, nil
}

// Summarize groups expenses by category and sums amounts per group.
// The result is sorted by total descending; equal totals are ordered by
// the category's declaration order so ranking is deterministic.
func Summarize(expenses []models.ExpenseDB) []models.CategoryTotal {
	totals := make(map[models.Category]*models.CategoryTotal)
	for _, e := range expenses {
		t, ok := totals[e.Category]
		if !ok {
			t = &models.CategoryTotal{Category: e.Category}
			totals[e.Category] = t
		}
		t.TotalAmount += e.Amount
		t.Count++
	}

	result := make([]models.CategoryTotal, 0, len(totals))
	for _, t := range totals {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalAmount != result[j].TotalAmount {
			return result[i].TotalAmount > result[j].TotalAmount
		}
		return result[i].Category.Rank() < result[j].Category.Rank()
	})
	return result
}

// TopCategories truncates a ranked breakdown to its k largest entries.
// A non-positive k yields an empty result.
func TopCategories(totals []models.CategoryTotal, k int) []models.CategoryTotal {
	if k <= 0 {
		return nil
	}
	if k < len(totals) {
		return totals[:k]
	}
	return totals
}

// BucketByMonth groups expenses by the (year, month) of their expense
// time and sums per bucket, ordered ascending chronologically.
func BucketByMonth(expenses []models.ExpenseDB) []models.MonthlyTotal {
	type key struct {
		year  int
		month int
	}
	buckets := make(map[key]models.Money)
	for _, e := range expenses {
		k := key{year: e.ExpenseTime.Year(), month: int(e.ExpenseTime.Month())}
		buckets[k] += e.Amount
	}

	result := make([]models.MonthlyTotal, 0, len(buckets))
	for k, total := range buckets {
		result = append(result, models.MonthlyTotal{Year: k.year, Month: k.month, TotalAmount: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Month < result[j].Month
	})
	return result
}

// SummaryService computes per-user spending summaries.
type SummaryService struct {
	expenses ExpenseReader
}

// NewSummaryService creates a new SummaryService instance.
func NewSummaryService(expenses ExpenseReader) *SummaryService {
	return &SummaryService{expenses: expenses}
}

// CategorySummary returns the caller's full per-category breakdown,
// largest total first.
func (svc *SummaryService) CategorySummary(ctx context.Context, userID uuid.UUID) ([]models.CategoryTotal, error) {
	expenses, err := svc.expenses.ListAllByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list expenses for summary", "err", err)
		return nil, err
	}
	return Summarize(expenses), nil
}

// MonthlySummary returns the caller's spending bucketed by calendar
// month, oldest first.
func (svc *SummaryService) MonthlySummary(ctx context.Context, userID uuid.UUID) ([]models.MonthlyTotal, error) {
	expenses, err := svc.expenses.ListAllByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list expenses for monthly summary", "err", err)
		return nil, err
	}
	return BucketByMonth(expenses), nil
}
