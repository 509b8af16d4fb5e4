// Package eggrecord contains egg-collection record use cases.
package eggrecord

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// DeleteRecordInput represents the input for egg-collection record deletion.
type DeleteRecordInput struct {
	ID uuid.UUID
}

// DeleteRecordUseCase handles egg-collection record deletion logic.
type DeleteRecordUseCase struct {
	recordRepo adapter.EggRecordRepository
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(recordRepo adapter.EggRecordRepository) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the egg-collection record deletion.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	if _, err := uc.recordRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"egg collection record not found",
			domainerror.ErrRecordNotFound,
		)
	}

	if err := uc.recordRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete egg collection record: %w", err)
	}

	return nil
}
