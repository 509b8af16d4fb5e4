// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SendEmailInput represents the input for sending an email. Tag carries the
// originating template type so the provider dashboard can group sends.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
	Tag     string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueuePaymentReminderEmail queues a payment reminder email for an
	// overdue credit sale.
	QueuePaymentReminderEmail(ctx context.Context, input QueuePaymentReminderInput) error
}

// QueuePaymentReminderInput represents the input for queueing a payment reminder email.
// RecordID identifies the overdue credit sale so repeat scans do not queue a
// second reminder while one is still waiting to go out.
type QueuePaymentReminderInput struct {
	RecordID   uuid.UUID
	UserID     string
	UserEmail  string
	UserName   string
	BuyerName  string
	Amount     string
	PaymentDue string
	FarmName   string
}
