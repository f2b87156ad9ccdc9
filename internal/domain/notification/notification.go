// Package notification defines the contracts of the notification
// collaborator. The core calls these fire-and-forget: a failing
// collaborator never blocks or rolls back a domain mutation.
package notification

import "time"

// TargetType selects the audience of a broadcast.
type TargetType string

const (
	TargetAll      TargetType = "all"
	TargetCompany  TargetType = "company"
	TargetTeam     TargetType = "team"
	TargetEmployee TargetType = "employee"
)

// Broadcast is one outgoing notification.
type Broadcast struct {
	Title      string
	Body       string
	TargetType TargetType
	TargetID   string
	SenderID   string
}

// Broadcaster delivers broadcasts to the presentation layer.
type Broadcaster interface {
	Broadcast(b Broadcast) error
}

// ReminderScheduler schedules and cancels reminders identified by an
// opaque id. Scheduling twice with the same id replaces the reminder.
type ReminderScheduler interface {
	ScheduleReminder(id, title string, at time.Time) error
	ScheduleMonthlyReminder(id, title string, dayOfMonth int) error
	CancelReminder(id string)
}
