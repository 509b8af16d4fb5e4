// Package report contains the reporting and aggregation use cases.
package report

import (
	"context"
	"time"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// EggRecordRepository defines the egg-collection data the aggregators consume.
type EggRecordRepository interface {
	// FindByDateRange returns all egg-collection records dated within
	// [startDate, endDate], both bounds inclusive of the full day.
	FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.EggCollectionRecord, error)

	// FindUnpaidCreditSales returns records with a buyer name that are not
	// marked paid, regardless of date.
	FindUnpaidCreditSales(ctx context.Context) ([]*entity.EggCollectionRecord, error)
}

// ExpenseRepository defines the expense data the aggregators consume.
type ExpenseRepository interface {
	// FindByDateRange returns all expenses dated within [startDate, endDate].
	FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.Expense, error)

	// FindByCategoryAndDateRange returns expenses of one category within the range.
	FindByCategoryAndDateRange(ctx context.Context, category string, startDate, endDate time.Time) ([]*entity.Expense, error)
}

// RevenueRepository defines the revenue data the aggregators consume.
type RevenueRepository interface {
	// FindByDateRange returns all revenues dated within [startDate, endDate].
	FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.Revenue, error)
}

// Cache stores generated report envelopes keyed by type and date range so
// repeated requests for the same period skip recomputation. Implementations
// must treat a miss as (nil, nil).
type Cache interface {
	Get(ctx context.Context, key string) (*Report, error)
	Set(ctx context.Context, key string, rep *Report, ttl time.Duration) error
}
