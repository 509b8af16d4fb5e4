// Package scheduler runs periodic background jobs on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/application/usecase/reminder"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	schedule  string
	userRepo  adapter.UserRepository
	reminders *reminder.SendPaymentRemindersUseCase
}

// NewScheduler creates a new scheduler instance. The schedule uses the
// standard five-field cron format.
func NewScheduler(
	schedule string,
	userRepo adapter.UserRepository,
	reminders *reminder.SendPaymentRemindersUseCase,
) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		schedule:  schedule,
		userRepo:  userRepo,
		reminders: reminders,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runPaymentReminderScan); err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("Scheduler started", "payment_reminder_schedule", s.schedule)
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler stopped")
}

// runPaymentReminderScan queues overdue payment reminders for every user
// that opted in to email notifications.
func (s *Scheduler) runPaymentReminderScan() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	users, err := s.userRepo.FindWithNotificationsEnabled(ctx)
	if err != nil {
		slog.Error("Payment reminder scan failed to list users", "error", err)
		return
	}

	totalOverdue := 0
	totalQueued := 0
	for _, user := range users {
		output, err := s.reminders.Execute(ctx, user)
		if err != nil {
			slog.Error("Payment reminder scan failed for user",
				"userID", user.ID,
				"error", err,
			)
			continue
		}
		totalOverdue += output.OverdueCount
		totalQueued += output.QueuedCount
	}

	slog.Info("Payment reminder scan finished",
		"users", len(users),
		"overdue", totalOverdue,
		"queued", totalQueued,
	)
}
