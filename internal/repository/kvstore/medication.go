package kvstore

import (
	"time"

	"github.com/stafftrack/hr-core-go/internal/domain/medication"
	"github.com/stafftrack/hr-core-go/internal/domain/record"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
)

// MedicationRepository stores prescriptions under the "medications" key and
// appends one history row per mutation to "prescriptions_history".
type MedicationRepository struct {
	col     collection[medication.Medication, *medication.Medication]
	history collection[medication.History, *medication.History]
}

func NewMedicationRepository(store kv.Store) *MedicationRepository {
	return &MedicationRepository{
		col:     newCollection[medication.Medication](store, keyMedications),
		history: newCollection[medication.History](store, keyPrescriptionHistory),
	}
}

func (r *MedicationRepository) GetAll() ([]medication.Medication, error) {
	return r.col.getAll()
}

func (r *MedicationRepository) GetByID(id string) (*medication.Medication, error) {
	return r.col.getByID(id)
}

func (r *MedicationRepository) GetByEmployeeID(employeeID string) ([]medication.Medication, error) {
	all, err := r.col.getAll()
	if err != nil {
		return nil, err
	}
	var matched []medication.Medication
	for _, m := range all {
		if m.EmployeeID == employeeID {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

// GetExpiringSoon returns prescriptions running out inside the window,
// used to drive refill reminders.
func (r *MedicationRepository) GetExpiringSoon(now time.Time, within time.Duration) ([]medication.Medication, error) {
	all, err := r.col.getAll()
	if err != nil {
		return nil, err
	}
	limit := now.Add(within)
	var matched []medication.Medication
	for _, m := range all {
		expiry, ok := record.ParseTimestamp(m.ExpiryDate)
		if !ok {
			continue
		}
		if expiry.After(now) && expiry.Before(limit) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func (r *MedicationRepository) Add(m *medication.Medication) (string, error) {
	id, err := r.col.add(m)
	if err != nil {
		return "", err
	}
	r.appendHistory(id, m.EmployeeID, record.HistoryCreated)
	return id, nil
}

func (r *MedicationRepository) Update(id string, apply func(*medication.Medication)) error {
	var employeeID string
	found, err := r.col.update(id, func(m *medication.Medication) {
		apply(m)
		employeeID = m.EmployeeID
	})
	if err != nil {
		return err
	}
	if found {
		r.appendHistory(id, employeeID, record.HistoryUpdated)
	}
	return nil
}

// Refill pushes the expiry date forward and logs the dedicated refilled
// history action. A prescription without an expiry date has nothing to
// refill.
func (r *MedicationRepository) Refill(id string, newExpiryDate string) error {
	existing, err := r.col.getByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if existing.ExpiryDate == "" {
		return medication.ErrNotRefillable
	}
	var employeeID string
	found, err := r.col.update(id, func(m *medication.Medication) {
		m.ExpiryDate = newExpiryDate
		employeeID = m.EmployeeID
	})
	if err != nil {
		return err
	}
	if found {
		r.appendHistory(id, employeeID, record.HistoryRefilled)
	}
	return nil
}

func (r *MedicationRepository) Delete(id string) error {
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

func (r *MedicationRepository) GetHistory(medicationID string) ([]medication.History, error) {
	all, err := r.history.getAll()
	if err != nil {
		return nil, err
	}
	var matched []medication.History
	for _, h := range all {
		if h.MedicationID == medicationID {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

func (r *MedicationRepository) appendHistory(medicationID, employeeID string, action record.HistoryAction) {
	_, _ = r.history.add(&medication.History{
		MedicationID: medicationID,
		EmployeeID:   employeeID,
		Action:       action,
	})
}
