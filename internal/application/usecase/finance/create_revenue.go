// Package finance contains expense and revenue use cases.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// CreateRevenueInput represents the input for revenue creation.
type CreateRevenueInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// RevenueOutput represents a single revenue in the output.
type RevenueOutput struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateRevenueOutput represents the output of revenue creation.
type CreateRevenueOutput struct {
	Revenue *RevenueOutput
}

// CreateRevenueUseCase handles revenue creation logic.
type CreateRevenueUseCase struct {
	revenueRepo adapter.RevenueRepository
}

// NewCreateRevenueUseCase creates a new CreateRevenueUseCase instance.
func NewCreateRevenueUseCase(revenueRepo adapter.RevenueRepository) *CreateRevenueUseCase {
	return &CreateRevenueUseCase{
		revenueRepo: revenueRepo,
	}
}

// Execute performs the revenue creation.
func (uc *CreateRevenueUseCase) Execute(ctx context.Context, input CreateRevenueInput) (*CreateRevenueOutput, error) {
	if err := validateMoneyFields(input.Amount, input.Description); err != nil {
		return nil, err
	}

	revenue := entity.NewRevenue(input.UserID, input.Amount, input.Description, input.Category, input.Date)

	if err := uc.revenueRepo.Create(ctx, revenue); err != nil {
		return nil, fmt.Errorf("failed to create revenue: %w", err)
	}

	return &CreateRevenueOutput{Revenue: toRevenueOutput(revenue)}, nil
}

// toRevenueOutput maps an entity to the use case output shape.
func toRevenueOutput(revenue *entity.Revenue) *RevenueOutput {
	return &RevenueOutput{
		ID:          revenue.ID,
		Amount:      revenue.Amount,
		Description: revenue.Description,
		Category:    revenue.CategoryOrDefault(),
		Date:        revenue.Date,
		CreatedAt:   revenue.CreatedAt,
		UpdatedAt:   revenue.UpdatedAt,
	}
}
