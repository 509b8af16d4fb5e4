package email

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
)

type fakeQueueRepo struct {
	jobs []*entity.EmailJob
}

func (f *fakeQueueRepo) Create(_ context.Context, job *entity.EmailJob) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueueRepo) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	if len(f.jobs) > limit {
		return f.jobs[:limit], nil
	}
	return f.jobs, nil
}

func (f *fakeQueueRepo) Update(_ context.Context, _ *entity.EmailJob) error { return nil }

func (f *fakeQueueRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.EmailJob, error) {
	return nil, nil
}

func (f *fakeQueueRepo) GetByRecipient(_ context.Context, _ string) ([]*entity.EmailJob, error) {
	return f.jobs, nil
}

func (f *fakeQueueRepo) HasUnsentForReference(_ context.Context, referenceID uuid.UUID) (bool, error) {
	for _, job := range f.jobs {
		if job.ReferenceID == nil || *job.ReferenceID != referenceID {
			continue
		}
		if job.Status == entity.EmailStatusPending || job.Status == entity.EmailStatusProcessing {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeQueueRepo) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) { return 0, nil }

func reminderInput(recordID uuid.UUID) adapter.QueuePaymentReminderInput {
	return adapter.QueuePaymentReminderInput{
		RecordID:   recordID,
		UserEmail:  "farmer@example.com",
		UserName:   "Ama",
		BuyerName:  "Village Market",
		Amount:     "39.00",
		PaymentDue: "2025-03-10",
		FarmName:   "Sunny Acres",
	}
}

func TestQueuePaymentReminderEmail(t *testing.T) {
	queue := &fakeQueueRepo{}
	service := NewService(queue)

	recordID := uuid.New()
	if err := service.QueuePaymentReminderEmail(context.Background(), reminderInput(recordID)); err != nil {
		t.Fatalf("QueuePaymentReminderEmail() error = %v", err)
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("queued jobs = %d, want 1", len(queue.jobs))
	}

	job := queue.jobs[0]
	if job.TemplateType != entity.TemplatePaymentReminder {
		t.Errorf("TemplateType = %s, want %s", job.TemplateType, entity.TemplatePaymentReminder)
	}
	if job.ReferenceID == nil || *job.ReferenceID != recordID {
		t.Errorf("ReferenceID = %v, want %s", job.ReferenceID, recordID)
	}
	if job.TemplateData["buyer_name"] != "Village Market" {
		t.Errorf("buyer_name = %v, want Village Market", job.TemplateData["buyer_name"])
	}
}

func TestQueuePaymentReminderEmailSkipsWhileReminderUnsent(t *testing.T) {
	queue := &fakeQueueRepo{}
	service := NewService(queue)

	recordID := uuid.New()
	input := reminderInput(recordID)

	if err := service.QueuePaymentReminderEmail(context.Background(), input); err != nil {
		t.Fatalf("first queue error = %v", err)
	}
	if err := service.QueuePaymentReminderEmail(context.Background(), input); err != nil {
		t.Fatalf("second queue error = %v", err)
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("queued jobs = %d, want 1 (second queue must be a no-op)", len(queue.jobs))
	}
}

func TestQueuePaymentReminderEmailRequeuesAfterSent(t *testing.T) {
	queue := &fakeQueueRepo{}
	service := NewService(queue)

	recordID := uuid.New()
	input := reminderInput(recordID)

	if err := service.QueuePaymentReminderEmail(context.Background(), input); err != nil {
		t.Fatalf("first queue error = %v", err)
	}
	queue.jobs[0].MarkSent("provider-1")

	if err := service.QueuePaymentReminderEmail(context.Background(), input); err != nil {
		t.Fatalf("second queue error = %v", err)
	}

	// A sale still unpaid on the next scan gets a fresh reminder once the
	// previous one has left the queue.
	if len(queue.jobs) != 2 {
		t.Fatalf("queued jobs = %d, want 2", len(queue.jobs))
	}
}
