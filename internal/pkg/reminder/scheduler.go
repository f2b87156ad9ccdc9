// Package reminder schedules notification reminders on top of a cron
// runner: recurring monthly entries (payroll) and one-shot entries that
// fire once at a given instant (leave start, medication refill).
package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Notify is invoked when a reminder fires.
type Notify func(id, title string)

// Scheduler tracks reminders by caller-supplied id so they can be replaced
// or cancelled.
type Scheduler struct {
	cron    *cron.Cron
	notify  Notify
	logger  *logrus.Logger
	mu      sync.Mutex
	entries map[string]cron.EntryID
}

func NewScheduler(notify Notify, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		notify:  notify,
		logger:  logger,
		entries: make(map[string]cron.EntryID),
	}
}

// Start begins dispatching reminders in the cron runner's goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts dispatching; already-running callbacks finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// ScheduleReminder registers a one-shot reminder at the given instant.
// Scheduling with an id that is already registered replaces the reminder.
// Instants in the past are dropped.
func (s *Scheduler) ScheduleReminder(id, title string, at time.Time) error {
	if !at.After(time.Now()) {
		s.logger.WithField("reminder", id).Warn("reminder instant already passed, skipping")
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
	entryID := s.cron.Schedule(onceAt{at: at}, cron.FuncJob(func() {
		s.notify(id, title)
		s.CancelReminder(id)
	}))
	s.entries[id] = entryID
	return nil
}

// ScheduleMonthlyReminder registers a reminder that fires at 09:00 on the
// given day of every month.
func (s *Scheduler) ScheduleMonthlyReminder(id, title string, dayOfMonth int) error {
	if dayOfMonth < 1 || dayOfMonth > 28 {
		return fmt.Errorf("day of month %d outside 1-28", dayOfMonth)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
	entryID, err := s.cron.AddFunc(fmt.Sprintf("0 9 %d * *", dayOfMonth), func() {
		s.notify(id, title)
	})
	if err != nil {
		return fmt.Errorf("failed to register monthly reminder: %w", err)
	}
	s.entries[id] = entryID
	return nil
}

// CancelReminder removes a reminder. Unknown ids are a no-op.
func (s *Scheduler) CancelReminder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *Scheduler) removeLocked(id string) {
	if entryID, ok := s.entries[id]; ok {
		s.cron.Remove(entryID)
		delete(s.entries, id)
	}
}

// onceAt fires a single time at a fixed instant.
type onceAt struct {
	at time.Time
}

func (o onceAt) Next(t time.Time) time.Time {
	if t.Before(o.at) {
		return o.at
	}
	return time.Time{}
}
