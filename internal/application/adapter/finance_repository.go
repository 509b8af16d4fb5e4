// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByDateRange retrieves all expenses inside the closed interval,
	// ordered by date ascending.
	FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.Expense, error)

	// FindByCategoryAndDateRange retrieves expenses of one category inside
	// the closed interval.
	FindByCategoryAndDateRange(ctx context.Context, category string, startDate, endDate time.Time) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RevenueRepository defines the interface for revenue persistence operations.
type RevenueRepository interface {
	// Create creates a new revenue in the database.
	Create(ctx context.Context, revenue *entity.Revenue) error

	// FindByID retrieves a revenue by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Revenue, error)

	// FindByDateRange retrieves all revenues inside the closed interval,
	// ordered by date ascending.
	FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.Revenue, error)

	// Update updates an existing revenue in the database.
	Update(ctx context.Context, revenue *entity.Revenue) error

	// Delete removes a revenue from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
