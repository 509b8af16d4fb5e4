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

// MaxNotesLength is the maximum allowed length for record notes.
const MaxNotesLength = 1000

// CreateRecordInput represents the input for egg-collection record creation.
type CreateRecordInput struct {
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

// CreateRecordOutput represents the output of egg-collection record creation.
type CreateRecordOutput struct {
	Record *RecordOutput
}

// RecordOutput represents a single egg-collection record in the output.
type RecordOutput struct {
	ID                uuid.UUID
	Date              time.Time
	CageID            string
	Count             int
	IsFromNewChickens bool
	Damaged           int
	Spoiled           int
	Sold              int
	Leftover          int
	SoldAs            entity.SoldAs
	PricePerUnit      decimal.Decimal
	SaleAmount        decimal.Decimal
	PaymentDue        *time.Time
	PaymentStatus     entity.PaymentStatus
	BuyerName         string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CreateRecordUseCase handles egg-collection record creation logic.
type CreateRecordUseCase struct {
	recordRepo adapter.EggRecordRepository
	cageRepo   adapter.CageRepository
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(
	recordRepo adapter.EggRecordRepository,
	cageRepo adapter.CageRepository,
) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo: recordRepo,
		cageRepo:   cageRepo,
	}
}

// Execute performs the egg-collection record creation.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	if err := validateRecordFields(input.CageID, input.Count, input.Damaged, input.Spoiled, input.Sold, input.SoldAs, input.PaymentStatus); err != nil {
		return nil, err
	}

	if len(input.Notes) > MaxNotesLength {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	cageExists, err := uc.cageRepo.ExistsByName(ctx, input.CageID)
	if err != nil {
		return nil, fmt.Errorf("failed to check cage: %w", err)
	}
	if !cageExists {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeMissingCage,
			fmt.Sprintf("cage %q does not exist", input.CageID),
			domainerror.ErrMissingCage,
		)
	}

	record := entity.NewEggCollectionRecord(
		input.Date,
		input.CageID,
		input.Count,
		input.IsFromNewChickens,
		input.Damaged,
		input.Spoiled,
		input.Sold,
		input.SoldAs,
		input.PricePerUnit,
	)
	record.PaymentDue = input.PaymentDue
	record.PaymentStatus = input.PaymentStatus
	record.BuyerName = input.BuyerName
	record.Notes = input.Notes

	if record.IsCreditSale() && record.PaymentStatus == "" {
		record.PaymentStatus = entity.PaymentStatusPending
	}

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create egg collection record: %w", err)
	}

	return &CreateRecordOutput{Record: toRecordOutput(record)}, nil
}

// validateRecordFields validates the count and enum fields shared by create
// and update.
func validateRecordFields(cageID string, count, damaged, spoiled, sold int, soldAs entity.SoldAs, status entity.PaymentStatus) error {
	if cageID == "" {
		return domainerror.NewRecordError(
			domainerror.ErrCodeMissingCage,
			"cage_id is required",
			domainerror.ErrMissingCage,
		)
	}

	if count < 0 || damaged < 0 || spoiled < 0 || sold < 0 {
		return domainerror.NewRecordError(
			domainerror.ErrCodeNegativeCount,
			"egg counts cannot be negative",
			domainerror.ErrNegativeCount,
		)
	}

	if damaged+spoiled+sold > count {
		return domainerror.NewRecordError(
			domainerror.ErrCodeCountExceeded,
			"damaged, spoiled and sold eggs cannot exceed the collected count",
			domainerror.ErrCountExceeded,
		)
	}

	if soldAs != "" && soldAs != entity.SoldAsSingle && soldAs != entity.SoldAsCrate {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidSoldAs,
			"sold_as must be: single or crate",
			domainerror.ErrInvalidSoldAs,
		)
	}

	if status != "" && !isValidPaymentStatus(status) {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidPaymentStatus,
			"payment_status must be: paid, pending, or overdue",
			domainerror.ErrInvalidPaymentStatus,
		)
	}

	return nil
}

// isValidPaymentStatus validates the payment status.
func isValidPaymentStatus(status entity.PaymentStatus) bool {
	return status == entity.PaymentStatusPaid ||
		status == entity.PaymentStatusPending ||
		status == entity.PaymentStatusOverdue
}

// toRecordOutput maps an entity to the use case output shape.
func toRecordOutput(record *entity.EggCollectionRecord) *RecordOutput {
	return &RecordOutput{
		ID:                record.ID,
		Date:              record.Date,
		CageID:            record.CageID,
		Count:             record.Count,
		IsFromNewChickens: record.IsFromNewChickens,
		Damaged:           record.Damaged,
		Spoiled:           record.Spoiled,
		Sold:              record.Sold,
		Leftover:          record.Leftover(),
		SoldAs:            record.SoldAs,
		PricePerUnit:      record.PricePerUnit,
		SaleAmount:        record.SaleAmount(),
		PaymentDue:        record.PaymentDue,
		PaymentStatus:     record.PaymentStatus,
		BuyerName:         record.BuyerName,
		Notes:             record.Notes,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}
