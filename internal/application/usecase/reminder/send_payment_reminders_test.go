package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
)

type stubRecordRepo struct {
	overdue []*entity.EggCollectionRecord
	updated []*entity.EggCollectionRecord
}

func (s *stubRecordRepo) Create(_ context.Context, _ *entity.EggCollectionRecord) error { return nil }

func (s *stubRecordRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.EggCollectionRecord, error) {
	return nil, errors.New("record not found")
}

func (s *stubRecordRepo) FindByFilter(_ context.Context, _ adapter.EggRecordFilter, _ adapter.EggRecordPagination) (*adapter.EggRecordListResult, error) {
	return &adapter.EggRecordListResult{}, nil
}

func (s *stubRecordRepo) FindByDateRange(_ context.Context, _, _ time.Time) ([]*entity.EggCollectionRecord, error) {
	return nil, nil
}

func (s *stubRecordRepo) FindUnpaidCreditSales(_ context.Context) ([]*entity.EggCollectionRecord, error) {
	return nil, nil
}

func (s *stubRecordRepo) FindOverdueCreditSales(_ context.Context, _ time.Time) ([]*entity.EggCollectionRecord, error) {
	return s.overdue, nil
}

func (s *stubRecordRepo) Update(_ context.Context, record *entity.EggCollectionRecord) error {
	s.updated = append(s.updated, record)
	return nil
}

func (s *stubRecordRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type stubEmailService struct {
	queued  []adapter.QueuePaymentReminderInput
	failFor string
}

func (s *stubEmailService) QueuePaymentReminderEmail(_ context.Context, input adapter.QueuePaymentReminderInput) error {
	if s.failFor != "" && input.BuyerName == s.failFor {
		return errors.New("queue full")
	}
	s.queued = append(s.queued, input)
	return nil
}

func overdueSale(buyer string, due time.Time) *entity.EggCollectionRecord {
	record := entity.NewEggCollectionRecord(
		due.AddDate(0, 0, -7),
		"A", 30, false, 0, 0, 30,
		entity.SoldAsCrate, decimal.RequireFromString("13.00"),
	)
	record.BuyerName = buyer
	record.PaymentDue = &due
	record.PaymentStatus = entity.PaymentStatusPending
	return record
}

func TestSendPaymentRemindersQueuesAndMarksOverdue(t *testing.T) {
	now := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)
	due := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	recordRepo := &stubRecordRepo{overdue: []*entity.EggCollectionRecord{
		overdueSale("John", due),
		overdueSale("Mary", due),
	}}
	emailService := &stubEmailService{}

	user := entity.NewUser("farmer@example.com", "Amina", "hash", "Sunrise Farm")

	uc := NewSendPaymentRemindersUseCase(recordRepo, emailService).
		WithClock(func() time.Time { return now })

	out, err := uc.Execute(context.Background(), user)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out.OverdueCount != 2 || out.QueuedCount != 2 {
		t.Errorf("overdue = %d queued = %d, want 2/2", out.OverdueCount, out.QueuedCount)
	}
	if len(recordRepo.updated) != 2 {
		t.Errorf("records marked overdue = %d, want 2", len(recordRepo.updated))
	}
	if len(emailService.queued) != 2 {
		t.Fatalf("emails queued = %d, want 2", len(emailService.queued))
	}

	first := emailService.queued[0]
	if first.BuyerName != "John" || first.Amount != "390.00" || first.PaymentDue != "2025-03-10" {
		t.Errorf("queued input = %+v", first)
	}
	if first.RecordID != recordRepo.overdue[0].ID {
		t.Errorf("RecordID = %s, want %s", first.RecordID, recordRepo.overdue[0].ID)
	}
}

func TestSendPaymentRemindersContinuesAfterQueueFailure(t *testing.T) {
	now := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)
	due := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	recordRepo := &stubRecordRepo{overdue: []*entity.EggCollectionRecord{
		overdueSale("John", due),
		overdueSale("Mary", due),
	}}
	emailService := &stubEmailService{failFor: "John"}

	user := entity.NewUser("farmer@example.com", "Amina", "hash", "Sunrise Farm")

	uc := NewSendPaymentRemindersUseCase(recordRepo, emailService).
		WithClock(func() time.Time { return now })

	out, err := uc.Execute(context.Background(), user)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.QueuedCount != 1 {
		t.Errorf("QueuedCount = %d, want 1", out.QueuedCount)
	}
}

func TestSendPaymentRemindersHonorsNotificationOptOut(t *testing.T) {
	recordRepo := &stubRecordRepo{overdue: []*entity.EggCollectionRecord{
		overdueSale("John", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)),
	}}
	emailService := &stubEmailService{}

	user := entity.NewUser("farmer@example.com", "Amina", "hash", "Sunrise Farm")
	user.EmailNotifications = false

	uc := NewSendPaymentRemindersUseCase(recordRepo, emailService)

	out, err := uc.Execute(context.Background(), user)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.OverdueCount != 0 || len(emailService.queued) != 0 {
		t.Error("opted-out user should receive no reminders")
	}
}
