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
)

// CreateFeedItemInput represents the input for feed item creation.
type CreateFeedItemInput struct {
	Type             string
	ChickenType      entity.ChickenType
	CurrentStock     decimal.Decimal
	DailyConsumption decimal.Decimal
	ReorderLevel     decimal.Decimal
	CostPerKg        decimal.Decimal
}

// FeedItemOutput represents a single feed item in the output.
type FeedItemOutput struct {
	ID               uuid.UUID
	Type             string
	ChickenType      entity.ChickenType
	CurrentStock     decimal.Decimal
	DailyConsumption decimal.Decimal
	ReorderLevel     decimal.Decimal
	CostPerKg        decimal.Decimal
	NeedsReorder     bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateFeedItemOutput represents the output of feed item creation.
type CreateFeedItemOutput struct {
	FeedItem *FeedItemOutput
}

// CreateFeedItemUseCase handles feed item creation logic.
type CreateFeedItemUseCase struct {
	feedRepo adapter.FeedItemRepository
}

// NewCreateFeedItemUseCase creates a new CreateFeedItemUseCase instance.
func NewCreateFeedItemUseCase(feedRepo adapter.FeedItemRepository) *CreateFeedItemUseCase {
	return &CreateFeedItemUseCase{
		feedRepo: feedRepo,
	}
}

// Execute performs the feed item creation.
func (uc *CreateFeedItemUseCase) Execute(ctx context.Context, input CreateFeedItemInput) (*CreateFeedItemOutput, error) {
	chickenType := input.ChickenType
	if chickenType == "" {
		chickenType = entity.ChickenTypeAll
	}

	item := entity.NewFeedItem(
		input.Type,
		chickenType,
		input.CurrentStock,
		input.DailyConsumption,
		input.ReorderLevel,
		input.CostPerKg,
	)

	if err := uc.feedRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create feed item: %w", err)
	}

	return &CreateFeedItemOutput{FeedItem: toFeedItemOutput(item)}, nil
}

// toFeedItemOutput maps an entity to the use case output shape.
func toFeedItemOutput(item *entity.FeedItem) *FeedItemOutput {
	return &FeedItemOutput{
		ID:               item.ID,
		Type:             item.Type,
		ChickenType:      item.ChickenType,
		CurrentStock:     item.CurrentStock,
		DailyConsumption: item.DailyConsumption,
		ReorderLevel:     item.ReorderLevel,
		CostPerKg:        item.CostPerKg,
		NeedsReorder:     item.NeedsReorder(),
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
