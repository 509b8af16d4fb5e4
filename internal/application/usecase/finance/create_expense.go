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
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for descriptions.
const MaxDescriptionLength = 255

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// ExpenseOutput represents a single expense in the output.
type ExpenseOutput struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateMoneyFields(input.Amount, input.Description); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(input.UserID, input.Amount, input.Description, input.Category, input.Date)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}

// validateMoneyFields validates the amount and description shared by expense
// and revenue creation.
func validateMoneyFields(amount decimal.Decimal, description string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be greater than zero",
			domainerror.ErrNonPositiveAmount,
		)
	}

	if description == "" {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}

	if len(description) > MaxDescriptionLength {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeMissingDescription,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrMissingDescription,
		)
	}

	return nil
}

// toExpenseOutput maps an entity to the use case output shape.
func toExpenseOutput(expense *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:          expense.ID,
		Amount:      expense.Amount,
		Description: expense.Description,
		Category:    expense.CategoryOrDefault(),
		Date:        expense.Date,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
