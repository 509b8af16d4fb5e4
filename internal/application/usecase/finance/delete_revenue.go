// Package finance contains expense and revenue use cases.
package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// DeleteRevenueInput represents the input for revenue deletion.
type DeleteRevenueInput struct {
	ID uuid.UUID
}

// DeleteRevenueUseCase handles revenue deletion logic.
type DeleteRevenueUseCase struct {
	revenueRepo adapter.RevenueRepository
}

// NewDeleteRevenueUseCase creates a new DeleteRevenueUseCase instance.
func NewDeleteRevenueUseCase(revenueRepo adapter.RevenueRepository) *DeleteRevenueUseCase {
	return &DeleteRevenueUseCase{
		revenueRepo: revenueRepo,
	}
}

// Execute performs the revenue deletion.
func (uc *DeleteRevenueUseCase) Execute(ctx context.Context, input DeleteRevenueInput) error {
	if _, err := uc.revenueRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeRevenueNotFound,
			"revenue not found",
			domainerror.ErrRevenueNotFound,
		)
	}

	if err := uc.revenueRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete revenue: %w", err)
	}

	return nil
}
