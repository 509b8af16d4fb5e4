// Package eggrecord contains egg-collection record use cases.
package eggrecord

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

// UpdateRecordInput represents the input for egg-collection record update.
type UpdateRecordInput struct {
	ID                uuid.UUID
	Date              time.Time
	CageID            string
	Count             int
	IsFromNewChickens bool
	Damaged           int
	Spoiled           int
	Sold              int
	SoldAs            entity.SoldAs
	PricePerUnit      decimal.Decimal
	PaymentDue        *time.Time
	PaymentStatus     entity.PaymentStatus
	BuyerName         string
	Notes             string
}

// UpdateRecordOutput represents the output of egg-collection record update.
type UpdateRecordOutput struct {
	Record *RecordOutput
}

// UpdateRecordUseCase handles egg-collection record update logic.
type UpdateRecordUseCase struct {
	recordRepo adapter.EggRecordRepository
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(recordRepo adapter.EggRecordRepository) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the egg-collection record update.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
	if err := validateRecordFields(input.CageID, input.Count, input.Damaged, input.Spoiled, input.Sold, input.SoldAs, input.PaymentStatus); err != nil {
		return nil, err
	}

	record, err := uc.recordRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"egg collection record not found",
			domainerror.ErrRecordNotFound,
		)
	}

	record.Date = input.Date
	record.CageID = input.CageID
	record.Count = input.Count
	record.IsFromNewChickens = input.IsFromNewChickens
	record.Damaged = input.Damaged
	record.Spoiled = input.Spoiled
	record.Sold = input.Sold
	record.SoldAs = input.SoldAs
	record.PricePerUnit = input.PricePerUnit
	record.PaymentDue = input.PaymentDue
	record.PaymentStatus = input.PaymentStatus
	record.BuyerName = input.BuyerName
	record.Notes = input.Notes
	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update egg collection record: %w", err)
	}

	return &UpdateRecordOutput{Record: toRecordOutput(record)}, nil
}
