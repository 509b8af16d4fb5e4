// Package finance contains expense and revenue use cases.
package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
	Total    decimal.Decimal
}

// ListExpensesUseCase handles listing expenses logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense listing. A missing range defaults to
// everything up to now.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	startDate, endDate := rangeOrDefault(input.StartDate, input.EndDate)

	var (
		expenses []*entity.Expense
		err      error
	)
	if input.Category != "" {
		expenses, err = uc.expenseRepo.FindByCategoryAndDateRange(ctx, input.Category, startDate, endDate)
	} else {
		expenses, err = uc.expenseRepo.FindByDateRange(ctx, startDate, endDate)
	}
	if err != nil {
		return nil, err
	}

	output := &ListExpensesOutput{
		Expenses: make([]*ExpenseOutput, len(expenses)),
		Total:    decimal.Zero,
	}
	for i, expense := range expenses {
		output.Expenses[i] = toExpenseOutput(expense)
		output.Total = output.Total.Add(expense.Amount)
	}

	return output, nil
}

// rangeOrDefault fills missing range bounds: the zero time as the start and
// the current moment as the end.
func rangeOrDefault(startDate, endDate *time.Time) (time.Time, time.Time) {
	start := time.Time{}
	if startDate != nil {
		start = *startDate
	}
	end := time.Now().UTC()
	if endDate != nil {
		end = *endDate
	}
	return start, end
}
