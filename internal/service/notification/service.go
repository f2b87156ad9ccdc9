// Package notification dispatches broadcasts and keeps reminders in sync
// with the leave and medication stores.
package notification

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stafftrack/hr-core-go/internal/domain/leave"
	"github.com/stafftrack/hr-core-go/internal/domain/medication"
	"github.com/stafftrack/hr-core-go/internal/domain/notification"
	"github.com/stafftrack/hr-core-go/internal/domain/record"
)

// LogBroadcaster is the default broadcast sink: it logs the notification
// for the presentation layer to pick up.
type LogBroadcaster struct {
	Logger *logrus.Logger
}

func (b *LogBroadcaster) Broadcast(n notification.Broadcast) error {
	b.Logger.WithFields(logrus.Fields{
		"target_type": n.TargetType,
		"target_id":   n.TargetID,
		"sender_id":   n.SenderID,
	}).Infof("%s: %s", n.Title, n.Body)
	return nil
}

const refillWindow = 7 * 24 * time.Hour

// Service keeps one-shot reminders aligned with upcoming leaves and
// prescriptions running out.
type Service struct {
	leaveRepo      leave.Repository
	medicationRepo medication.Repository
	scheduler      notification.ReminderScheduler
	logger         *logrus.Logger
}

func NewService(
	leaveRepo leave.Repository,
	medicationRepo medication.Repository,
	scheduler notification.ReminderScheduler,
	logger *logrus.Logger,
) *Service {
	return &Service{
		leaveRepo:      leaveRepo,
		medicationRepo: medicationRepo,
		scheduler:      scheduler,
		logger:         logger,
	}
}

// SyncLeaveReminders schedules a reminder at the start of every upcoming
// approved leave. Scheduling is idempotent per leave id.
func (s *Service) SyncLeaveReminders(now time.Time) error {
	upcoming, err := s.leaveRepo.GetUpcoming(now)
	if err != nil {
		return fmt.Errorf("failed to list upcoming leaves: %w", err)
	}
	for _, l := range upcoming {
		if l.Status != leave.StatusApproved {
			continue
		}
		when := l.StartDate
		if when == "" {
			when = l.DateTime
		}
		start, ok := record.ParseTimestamp(when)
		if !ok {
			continue
		}
		title := fmt.Sprintf("Leave starts %s", start.Format("02/01"))
		if err := s.scheduler.ScheduleReminder("leave:"+l.ID, title, at9(start)); err != nil {
			s.logger.WithError(err).WithField("leave", l.ID).Warn("failed to schedule leave reminder")
		}
	}
	return nil
}

// SyncRefillReminders schedules a reminder for every prescription expiring
// inside the refill window.
func (s *Service) SyncRefillReminders(now time.Time) error {
	expiring, err := s.medicationRepo.GetExpiringSoon(now, refillWindow)
	if err != nil {
		return fmt.Errorf("failed to list expiring medications: %w", err)
	}
	for _, m := range expiring {
		expiry, ok := record.ParseTimestamp(m.ExpiryDate)
		if !ok {
			continue
		}
		title := fmt.Sprintf("Refill %s before %s", m.Name, expiry.Format("02/01"))
		if err := s.scheduler.ScheduleReminder("refill:"+m.ID, title, at9(expiry)); err != nil {
			s.logger.WithError(err).WithField("medication", m.ID).Warn("failed to schedule refill reminder")
		}
	}
	return nil
}

func at9(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location())
}
