// Package absence computes whether an employee is absent right now and why.
// Illness and leave intervals are compared at day granularity; illness wins
// over an overlapping approved leave.
package absence

import (
	"time"

	"github.com/stafftrack/hr-core-go/internal/domain/illness"
	"github.com/stafftrack/hr-core-go/internal/domain/leave"
	"github.com/stafftrack/hr-core-go/internal/domain/record"
)

// Type classifies why an employee is absent.
type Type string

const (
	TypeSick  Type = "sick"
	TypeLeave Type = "leave"
)

// Status is the derived absence state for one employee. It is computed on
// demand and never persisted.
type Status struct {
	IsAbsent  bool
	Type      Type
	StartDate string
	EndDate   string
	Reason    string
}

// Service resolves absence status from the illness and leave stores.
type Service struct {
	illnessRepo illness.Repository
	leaveRepo   leave.Repository
	now         func() time.Time
}

func NewService(illnessRepo illness.Repository, leaveRepo leave.Repository) *Service {
	return &Service{
		illnessRepo: illnessRepo,
		leaveRepo:   leaveRepo,
		now:         time.Now,
	}
}

// GetUserAbsenceStatus reports whether the employee is absent today.
func (s *Service) GetUserAbsenceStatus(employeeID string) (Status, error) {
	illnesses, err := s.illnessRepo.GetByEmployeeID(employeeID)
	if err != nil {
		return Status{}, err
	}
	leaves, err := s.leaveRepo.GetByEmployeeID(employeeID)
	if err != nil {
		return Status{}, err
	}
	return Resolve(employeeID, illnesses, leaves, s.now()), nil
}

// Resolve is the pure resolution core. Priority order: an active illness
// wins over an active approved leave. Matching scans in list order, so the
// first active record is picked deterministically even if the data holds
// several. Records with unparseable dates never match.
func Resolve(employeeID string, illnesses []illness.Illness, leaves []leave.Leave, now time.Time) Status {
	today := startOfDay(now)

	for _, ill := range illnesses {
		if ill.EmployeeID != employeeID {
			continue
		}
		if !illnessActiveOn(ill, today) {
			continue
		}
		return Status{
			IsAbsent:  true,
			Type:      TypeSick,
			StartDate: ill.IssueDate,
			EndDate:   ill.ExpiryDate,
			Reason:    ill.Description,
		}
	}

	for _, l := range leaves {
		if l.EmployeeID != employeeID {
			continue
		}
		if !leaveActiveOn(l, today) {
			continue
		}
		return Status{
			IsAbsent:  true,
			Type:      TypeLeave,
			StartDate: l.StartDate,
			EndDate:   l.EndDate,
			Reason:    l.Reason,
		}
	}

	return Status{}
}

// illnessActiveOn: issueDate (midnight) <= today, and either no expiry or
// expiryDate (end of day) >= today.
func illnessActiveOn(ill illness.Illness, today time.Time) bool {
	issue, ok := record.ParseTimestamp(ill.IssueDate)
	if !ok {
		return false
	}
	if startOfDay(issue).After(today) {
		return false
	}
	if ill.ExpiryDate == "" {
		return true
	}
	expiry, ok := record.ParseTimestamp(ill.ExpiryDate)
	if !ok {
		return false
	}
	return !endOfDay(expiry).Before(today)
}

// leaveActiveOn: approved, both bounds present, startDate (midnight) <=
// today <= endDate (end of day). A leave missing either bound is never
// active; flagging absence off a half-filled record is worse than missing
// one.
func leaveActiveOn(l leave.Leave, today time.Time) bool {
	if l.Status != leave.StatusApproved {
		return false
	}
	if l.StartDate == "" || l.EndDate == "" {
		return false
	}
	start, ok := record.ParseTimestamp(l.StartDate)
	if !ok {
		return false
	}
	end, ok := record.ParseTimestamp(l.EndDate)
	if !ok {
		return false
	}
	if startOfDay(start).After(today) {
		return false
	}
	return !endOfDay(end).Before(today)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
