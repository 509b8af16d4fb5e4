// Package finance contains expense and revenue use cases.
package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if _, err := uc.expenseRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}
