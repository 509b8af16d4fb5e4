// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueuePaymentReminderEmail queues a reminder about an overdue credit sale.
// The daily scan revisits every overdue sale, so a sale with a reminder still
// pending in the queue is skipped rather than queued again.
func (s *Service) QueuePaymentReminderEmail(ctx context.Context, input adapter.QueuePaymentReminderInput) error {
	exists, err := s.queue.HasUnsentForReference(ctx, input.RecordID)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to check queue for existing reminder",
			err,
		)
	}
	if exists {
		slog.Debug("Payment reminder already queued, skipping",
			"record_id", input.RecordID,
			"buyer", input.BuyerName,
		)
		return nil
	}

	subject := fmt.Sprintf("Payment overdue: %s owes %s", input.BuyerName, input.Amount)

	templateData := map[string]interface{}{
		"user_name":   input.UserName,
		"buyer_name":  input.BuyerName,
		"amount":      input.Amount,
		"payment_due": input.PaymentDue,
		"farm_name":   input.FarmName,
	}

	job := entity.NewEmailJob(
		entity.TemplatePaymentReminder,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	).WithReference(input.RecordID)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue payment reminder email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
