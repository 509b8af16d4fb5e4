// Package reminder contains the overdue credit-sale reminder use case.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// SendPaymentRemindersOutput represents the result of one reminder scan.
type SendPaymentRemindersOutput struct {
	OverdueCount int
	QueuedCount  int
}

// SendPaymentRemindersUseCase scans for overdue credit sales and queues a
// payment reminder email to the farm operator for each one. Records already
// marked overdue are flipped to that status so listings stay consistent.
type SendPaymentRemindersUseCase struct {
	recordRepo   adapter.EggRecordRepository
	emailService adapter.EmailService
	now          func() time.Time
}

// NewSendPaymentRemindersUseCase creates a new SendPaymentRemindersUseCase instance.
func NewSendPaymentRemindersUseCase(
	recordRepo adapter.EggRecordRepository,
	emailService adapter.EmailService,
) *SendPaymentRemindersUseCase {
	return &SendPaymentRemindersUseCase{
		recordRepo:   recordRepo,
		emailService: emailService,
		now:          time.Now,
	}
}

// WithClock overrides the wall clock used for overdue detection.
func (uc *SendPaymentRemindersUseCase) WithClock(now func() time.Time) *SendPaymentRemindersUseCase {
	uc.now = now
	return uc
}

// Execute performs one reminder scan. A failure to queue one reminder does
// not abort the scan.
func (uc *SendPaymentRemindersUseCase) Execute(ctx context.Context, user *entity.User) (*SendPaymentRemindersOutput, error) {
	if user == nil || !user.EmailNotifications {
		return &SendPaymentRemindersOutput{}, nil
	}

	overdue, err := uc.recordRepo.FindOverdueCreditSales(ctx, uc.now())
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue credit sales: %w", err)
	}

	output := &SendPaymentRemindersOutput{OverdueCount: len(overdue)}

	for _, record := range overdue {
		if record.PaymentStatus != entity.PaymentStatusOverdue {
			record.PaymentStatus = entity.PaymentStatusOverdue
			record.UpdatedAt = uc.now().UTC()
			if err := uc.recordRepo.Update(ctx, record); err != nil {
				slog.Warn("Failed to mark credit sale overdue",
					"recordID", record.ID,
					"error", err,
				)
			}
		}

		paymentDue := ""
		if record.PaymentDue != nil {
			paymentDue = record.PaymentDue.Format("2006-01-02")
		}

		err := uc.emailService.QueuePaymentReminderEmail(ctx, adapter.QueuePaymentReminderInput{
			RecordID:   record.ID,
			UserID:     user.ID.String(),
			UserEmail:  user.Email,
			UserName:   user.Name,
			BuyerName:  record.BuyerName,
			Amount:     record.SaleAmount().StringFixed(2),
			PaymentDue: paymentDue,
			FarmName:   user.FarmName,
		})
		if err != nil {
			slog.Warn("Failed to queue payment reminder",
				"recordID", record.ID,
				"buyer", record.BuyerName,
				"error", err,
			)
			continue
		}
		output.QueuedCount++
	}

	return output, nil
}
