// Package finance contains expense and revenue use cases.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := validateMoneyFields(input.Amount, input.Description); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	expense.Amount = input.Amount
	expense.Description = input.Description
	expense.Category = input.Category
	expense.Date = input.Date
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}
