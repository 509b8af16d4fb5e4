// Package flock contains coop, cage and feed inventory use cases.
package flock

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

// AddFeedStockInput represents the input for adding feed stock.
type AddFeedStockInput struct {
	FeedItemID uuid.UUID
	UserID     uuid.UUID
	Kilograms  decimal.Decimal
	// BookExpense controls whether the purchase is recorded as a feed
	// expense at the item's cost per kilogram.
	BookExpense bool
}

// AddFeedStockOutput represents the output of adding feed stock.
type AddFeedStockOutput struct {
	FeedItem *FeedItemOutput
	Expense  *entity.Expense
}

// AddFeedStockUseCase increases a feed item's stock, optionally booking the
// purchase as a feed expense so the financial report picks it up.
type AddFeedStockUseCase struct {
	feedRepo    adapter.FeedItemRepository
	expenseRepo adapter.ExpenseRepository
}

// NewAddFeedStockUseCase creates a new AddFeedStockUseCase instance.
func NewAddFeedStockUseCase(
	feedRepo adapter.FeedItemRepository,
	expenseRepo adapter.ExpenseRepository,
) *AddFeedStockUseCase {
	return &AddFeedStockUseCase{
		feedRepo:    feedRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute performs the stock addition.
func (uc *AddFeedStockUseCase) Execute(ctx context.Context, input AddFeedStockInput) (*AddFeedStockOutput, error) {
	if input.Kilograms.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewFlockError(
			domainerror.ErrCodeInsufficientStock,
			"kilograms must be greater than zero",
			domainerror.ErrInsufficientFeedStock,
		)
	}

	item, err := uc.feedRepo.FindByID(ctx, input.FeedItemID)
	if err != nil {
		return nil, domainerror.NewFlockError(
			domainerror.ErrCodeFeedNotFound,
			"feed type not found",
			domainerror.ErrFeedNotFound,
		)
	}

	item.CurrentStock = item.CurrentStock.Add(input.Kilograms)
	item.UpdatedAt = time.Now().UTC()

	if err := uc.feedRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update feed stock: %w", err)
	}

	output := &AddFeedStockOutput{FeedItem: toFeedItemOutput(item)}

	if input.BookExpense && item.CostPerKg.GreaterThan(decimal.Zero) {
		expense := entity.NewExpense(
			input.UserID,
			item.CostPerKg.Mul(input.Kilograms),
			fmt.Sprintf("%s purchase (%s kg)", item.Type, input.Kilograms),
			entity.FeedCategory,
			time.Now().UTC(),
		)
		if err := uc.expenseRepo.Create(ctx, expense); err != nil {
			return nil, fmt.Errorf("failed to book feed expense: %w", err)
		}
		output.Expense = expense
	}

	return output, nil
}
