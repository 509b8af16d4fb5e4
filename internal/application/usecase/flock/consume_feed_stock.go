// Package flock contains coop, cage and feed inventory use cases.
package flock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// ConsumeFeedStockInput represents the input for consuming feed stock.
type ConsumeFeedStockInput struct {
	FeedItemID uuid.UUID
	Kilograms  decimal.Decimal
}

// ConsumeFeedStockOutput represents the output of consuming feed stock.
type ConsumeFeedStockOutput struct {
	FeedItem *FeedItemOutput
}

// ConsumeFeedStockUseCase decreases a feed item's stock.
type ConsumeFeedStockUseCase struct {
	feedRepo adapter.FeedItemRepository
}

// NewConsumeFeedStockUseCase creates a new ConsumeFeedStockUseCase instance.
func NewConsumeFeedStockUseCase(feedRepo adapter.FeedItemRepository) *ConsumeFeedStockUseCase {
	return &ConsumeFeedStockUseCase{
		feedRepo: feedRepo,
	}
}

// Execute performs the stock consumption.
func (uc *ConsumeFeedStockUseCase) Execute(ctx context.Context, input ConsumeFeedStockInput) (*ConsumeFeedStockOutput, error) {
	item, err := uc.feedRepo.FindByID(ctx, input.FeedItemID)
	if err != nil {
		return nil, domainerror.NewFlockError(
			domainerror.ErrCodeFeedNotFound,
			"feed type not found",
			domainerror.ErrFeedNotFound,
		)
	}

	if input.Kilograms.GreaterThan(item.CurrentStock) {
		return nil, domainerror.NewFlockError(
			domainerror.ErrCodeInsufficientStock,
			fmt.Sprintf("cannot consume %s kg, only %s kg in stock", input.Kilograms, item.CurrentStock),
			domainerror.ErrInsufficientFeedStock,
		)
	}

	item.CurrentStock = item.CurrentStock.Sub(input.Kilograms)
	item.UpdatedAt = time.Now().UTC()

	if err := uc.feedRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update feed stock: %w", err)
	}

	return &ConsumeFeedStockOutput{FeedItem: toFeedItemOutput(item)}, nil
}
