// Package flock contains coop, cage and feed inventory use cases.
package flock

import (
	"context"

	"github.com/cluck-and-track/backend/internal/application/adapter"
)

// ListFeedItemsOutput represents the output of listing feed items.
type ListFeedItemsOutput struct {
	FeedItems []*FeedItemOutput
}

// ListFeedItemsUseCase handles listing feed items logic.
type ListFeedItemsUseCase struct {
	feedRepo adapter.FeedItemRepository
}

// NewListFeedItemsUseCase creates a new ListFeedItemsUseCase instance.
func NewListFeedItemsUseCase(feedRepo adapter.FeedItemRepository) *ListFeedItemsUseCase {
	return &ListFeedItemsUseCase{
		feedRepo: feedRepo,
	}
}

// Execute performs the feed item listing.
func (uc *ListFeedItemsUseCase) Execute(ctx context.Context) (*ListFeedItemsOutput, error) {
	items, err := uc.feedRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	output := &ListFeedItemsOutput{FeedItems: make([]*FeedItemOutput, len(items))}
	for i, item := range items {
		output.FeedItems[i] = toFeedItemOutput(item)
	}

	return output, nil
}
