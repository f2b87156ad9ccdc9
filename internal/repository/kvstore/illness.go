package kvstore

import (
	"time"

	"github.com/stafftrack/hr-core-go/internal/domain/illness"
	"github.com/stafftrack/hr-core-go/internal/domain/record"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
	"github.com/stafftrack/hr-core-go/internal/pkg/validator"
)

// IllnessRepository stores illnesses under the "illnesses" key and appends
// one history row per mutation to "illnesses_history".
type IllnessRepository struct {
	col     collection[illness.Illness, *illness.Illness]
	history collection[illness.History, *illness.History]
}

func NewIllnessRepository(store kv.Store) *IllnessRepository {
	return &IllnessRepository{
		col:     newCollection[illness.Illness](store, keyIllnesses),
		history: newCollection[illness.History](store, keyIllnessHistory),
	}
}

func (r *IllnessRepository) GetAll() ([]illness.Illness, error) {
	return r.col.getAll()
}

func (r *IllnessRepository) GetByID(id string) (*illness.Illness, error) {
	return r.col.getByID(id)
}

func (r *IllnessRepository) GetByEmployeeID(employeeID string) ([]illness.Illness, error) {
	all, err := r.col.getAll()
	if err != nil {
		return nil, err
	}
	var matched []illness.Illness
	for _, i := range all {
		if i.EmployeeID == employeeID {
			matched = append(matched, i)
		}
	}
	return matched, nil
}

// GetExpiringSoon returns illnesses whose expiry date falls inside the
// window. Open-ended or unparseable expiry dates never match.
func (r *IllnessRepository) GetExpiringSoon(now time.Time, within time.Duration) ([]illness.Illness, error) {
	all, err := r.col.getAll()
	if err != nil {
		return nil, err
	}
	limit := now.Add(within)
	var matched []illness.Illness
	for _, i := range all {
		expiry, ok := record.ParseTimestamp(i.ExpiryDate)
		if !ok {
			continue
		}
		if expiry.After(now) && expiry.Before(limit) {
			matched = append(matched, i)
		}
	}
	return matched, nil
}

// Add stores the record after checking the issue/expiry ordering.
func (r *IllnessRepository) Add(i *illness.Illness) (string, error) {
	if err := validator.DateRange(i.IssueDate, i.ExpiryDate); err != nil {
		return "", illness.ErrInvalidDateRange
	}
	id, err := r.col.add(i)
	if err != nil {
		return "", err
	}
	r.appendHistory(id, i.EmployeeID, record.HistoryCreated)
	return id, nil
}

func (r *IllnessRepository) Update(id string, apply func(*illness.Illness)) error {
	var employeeID string
	found, err := r.col.update(id, func(i *illness.Illness) {
		apply(i)
		employeeID = i.EmployeeID
	})
	if err != nil {
		return err
	}
	if found {
		r.appendHistory(id, employeeID, record.HistoryUpdated)
	}
	return nil
}

func (r *IllnessRepository) Delete(id string) error {
	existing, err := r.col.getByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if _, err := r.col.delete(id); err != nil {
		return err
	}
	r.appendHistory(id, existing.EmployeeID, record.HistoryUpdated)
	return nil
}

func (r *IllnessRepository) GetHistory(illnessID string) ([]illness.History, error) {
	all, err := r.history.getAll()
	if err != nil {
		return nil, err
	}
	var matched []illness.History
	for _, h := range all {
		if h.IllnessID == illnessID {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

// History writes piggyback on parent mutations; a failed history append
// must not fail the mutation itself.
func (r *IllnessRepository) appendHistory(illnessID, employeeID string, action record.HistoryAction) {
	_, _ = r.history.add(&illness.History{
		IllnessID:  illnessID,
		EmployeeID: employeeID,
		Action:     action,
	})
}
