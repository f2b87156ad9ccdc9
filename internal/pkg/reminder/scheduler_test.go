package reminder

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestScheduler(fired chan string) *Scheduler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewScheduler(func(id, title string) {
		if fired != nil {
			fired <- id
		}
	}, logger)
}

func TestOnceAt_FiresExactlyOnce(t *testing.T) {
	at := time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)
	schedule := onceAt{at: at}

	assert.Equal(t, at, schedule.Next(at.Add(-time.Hour)))
	assert.True(t, schedule.Next(at).IsZero())
	assert.True(t, schedule.Next(at.Add(time.Minute)).IsZero())
}

func TestScheduleReminder_PastInstantIsDropped(t *testing.T) {
	s := newTestScheduler(nil)

	err := s.ScheduleReminder("r-1", "too late", time.Now().Add(-time.Hour))
	assert.NoError(t, err)
	assert.Empty(t, s.entries)
}

func TestScheduleReminder_ReplacesExistingID(t *testing.T) {
	s := newTestScheduler(nil)
	at := time.Now().Add(time.Hour)

	assert.NoError(t, s.ScheduleReminder("r-1", "first", at))
	assert.NoError(t, s.ScheduleReminder("r-1", "second", at.Add(time.Hour)))
	assert.Len(t, s.entries, 1)
}

func TestScheduleMonthlyReminder_DayBounds(t *testing.T) {
	s := newTestScheduler(nil)

	assert.Error(t, s.ScheduleMonthlyReminder("payroll:1", "Payroll", 0))
	assert.Error(t, s.ScheduleMonthlyReminder("payroll:1", "Payroll", 29))
	assert.NoError(t, s.ScheduleMonthlyReminder("payroll:1", "Payroll", 25))
	assert.Len(t, s.entries, 1)
}

func TestCancelReminder_UnknownIDIsNoOp(t *testing.T) {
	s := newTestScheduler(nil)

	s.CancelReminder("missing")

	at := time.Now().Add(time.Hour)
	assert.NoError(t, s.ScheduleReminder("r-1", "later", at))
	s.CancelReminder("r-1")
	assert.Empty(t, s.entries)
}
