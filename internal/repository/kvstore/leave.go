package kvstore

import (
	"time"

	"github.com/stafftrack/hr-core-go/internal/domain/leave"
	"github.com/stafftrack/hr-core-go/internal/domain/record"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
	"github.com/stafftrack/hr-core-go/internal/pkg/validator"
)

// LeaveRepository stores leave requests under the "leaves" key.
type LeaveRepository struct {
	col collection[leave.Leave, *leave.Leave]
}

func NewLeaveRepository(store kv.Store) *LeaveRepository {
	return &LeaveRepository{col: newCollection[leave.Leave](store, keyLeaves)}
}

func (r *LeaveRepository) GetAll() ([]leave.Leave, error) {
	return r.col.getAll()
}

func (r *LeaveRepository) GetByID(id string) (*leave.Leave, error) {
	return r.col.getByID(id)
}

func (r *LeaveRepository) GetByEmployeeID(employeeID string) ([]leave.Leave, error) {
	return r.filter(func(l leave.Leave) bool { return l.EmployeeID == employeeID })
}

func (r *LeaveRepository) GetPending() ([]leave.Leave, error) {
	return r.filter(func(l leave.Leave) bool { return l.Status == leave.StatusPending })
}

// GetUpcoming returns leaves whose primary instant is today or later. A
// leave with an unparseable instant is never upcoming.
func (r *LeaveRepository) GetUpcoming(now time.Time) ([]leave.Leave, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return r.filter(func(l leave.Leave) bool {
		when := l.StartDate
		if when == "" {
			when = l.DateTime
		}
		t, ok := record.ParseTimestamp(when)
		if !ok {
			return false
		}
		return !t.Before(today)
	})
}

// Add stores a new request. Requests start pending unless the caller set a
// status explicitly (demo seeding does). The type and date range are checked
// before anything is written.
func (r *LeaveRepository) Add(l *leave.Leave) (string, error) {
	if l.Type != "" {
		if _, err := leave.ParseType(string(l.Type)); err != nil {
			return "", leave.ErrUnknownType
		}
	}
	if err := validator.DateRange(l.StartDate, l.EndDate); err != nil {
		return "", leave.ErrInvalidDateRange
	}
	if l.Status == "" {
		l.Status = leave.StatusPending
	}
	return r.col.add(l)
}

// UpdateStatus is the raw status write used by the approval state machine.
// It applies no transition guards itself; a missing id is a no-op.
func (r *LeaveRepository) UpdateStatus(id string, status leave.Status, approvedBy string) error {
	_, err := r.col.update(id, func(l *leave.Leave) {
		l.Status = status
		l.ApprovedBy = approvedBy
		l.ApprovedAt = time.Now().Format(time.RFC3339)
	})
	return err
}

func (r *LeaveRepository) Delete(id string) error {
	_, err := r.col.delete(id)
	return err
}

func (r *LeaveRepository) filter(keep func(leave.Leave) bool) ([]leave.Leave, error) {
	all, err := r.col.getAll()
	if err != nil {
		return nil, err
	}
	var matched []leave.Leave
	for _, l := range all {
		if keep(l) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}
