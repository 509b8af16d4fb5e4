// Package finance contains expense and revenue use cases.
package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/adapter"
)

// ListRevenuesInput represents the input for listing revenues.
type ListRevenuesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ListRevenuesOutput represents the output of listing revenues.
type ListRevenuesOutput struct {
	Revenues []*RevenueOutput
	Total    decimal.Decimal
}

// ListRevenuesUseCase handles listing revenues logic.
type ListRevenuesUseCase struct {
	revenueRepo adapter.RevenueRepository
}

// NewListRevenuesUseCase creates a new ListRevenuesUseCase instance.
func NewListRevenuesUseCase(revenueRepo adapter.RevenueRepository) *ListRevenuesUseCase {
	return &ListRevenuesUseCase{
		revenueRepo: revenueRepo,
	}
}

// Execute performs the revenue listing.
func (uc *ListRevenuesUseCase) Execute(ctx context.Context, input ListRevenuesInput) (*ListRevenuesOutput, error) {
	startDate, endDate := rangeOrDefault(input.StartDate, input.EndDate)

	revenues, err := uc.revenueRepo.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	output := &ListRevenuesOutput{
		Revenues: make([]*RevenueOutput, len(revenues)),
		Total:    decimal.Zero,
	}
	for i, revenue := range revenues {
		output.Revenues[i] = toRevenueOutput(revenue)
		output.Total = output.Total.Add(revenue.Amount)
	}

	return output, nil
}
