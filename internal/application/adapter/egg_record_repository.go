// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// EggRecordFilter defines filter options for listing egg collection records.
type EggRecordFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	CageID        string
	PaymentStatus *entity.PaymentStatus
	CreditOnly    bool
}

// EggRecordPagination defines pagination options.
type EggRecordPagination struct {
	Page  int
	Limit int
}

// EggRecordListResult represents the result of listing egg collection records.
type EggRecordListResult struct {
	Records    []*entity.EggCollectionRecord
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// EggRecordRepository defines the interface for egg collection record persistence operations.
type EggRecordRepository interface {
	// Create creates a new egg collection record in the database.
	Create(ctx context.Context, record *entity.EggCollectionRecord) error

	// FindByID retrieves an egg collection record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EggCollectionRecord, error)

	// FindByFilter retrieves records based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter EggRecordFilter, pagination EggRecordPagination) (*EggRecordListResult, error)

	// FindByDateRange retrieves all records whose date falls inside the
	// closed interval, ordered by date ascending.
	FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.EggCollectionRecord, error)

	// FindUnpaidCreditSales retrieves all credit sale records whose payment
	// status is not paid.
	FindUnpaidCreditSales(ctx context.Context) ([]*entity.EggCollectionRecord, error)

	// FindOverdueCreditSales retrieves credit sales whose payment due date
	// is before the given moment and whose status is not paid.
	FindOverdueCreditSales(ctx context.Context, before time.Time) ([]*entity.EggCollectionRecord, error)

	// Update updates an existing egg collection record in the database.
	Update(ctx context.Context, record *entity.EggCollectionRecord) error

	// Delete removes an egg collection record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
