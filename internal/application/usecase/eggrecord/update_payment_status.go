// Package eggrecord contains egg-collection record use cases.
package eggrecord

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// UpdatePaymentStatusInput represents the input for updating a credit sale's payment status.
type UpdatePaymentStatusInput struct {
	ID     uuid.UUID
	Status entity.PaymentStatus
}

// UpdatePaymentStatusOutput represents the output of updating a payment status.
type UpdatePaymentStatusOutput struct {
	Record *RecordOutput
}

// UpdatePaymentStatusUseCase handles marking a credit sale paid, pending or overdue.
type UpdatePaymentStatusUseCase struct {
	recordRepo adapter.EggRecordRepository
}

// NewUpdatePaymentStatusUseCase creates a new UpdatePaymentStatusUseCase instance.
func NewUpdatePaymentStatusUseCase(recordRepo adapter.EggRecordRepository) *UpdatePaymentStatusUseCase {
	return &UpdatePaymentStatusUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the payment status update.
func (uc *UpdatePaymentStatusUseCase) Execute(ctx context.Context, input UpdatePaymentStatusInput) (*UpdatePaymentStatusOutput, error) {
	if !isValidPaymentStatus(input.Status) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidPaymentStatus,
			"payment_status must be: paid, pending, or overdue",
			domainerror.ErrInvalidPaymentStatus,
		)
	}

	record, err := uc.recordRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordNotFound,
			"egg collection record not found",
			domainerror.ErrRecordNotFound,
		)
	}

	record.PaymentStatus = input.Status
	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	return &UpdatePaymentStatusOutput{Record: toRecordOutput(record)}, nil
}
