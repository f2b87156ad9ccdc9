package medication

import "time"

// Repository is the medication record store contract. Mutations append a
// History row; Refill logs the dedicated refilled action.
type Repository interface {
	GetAll() ([]Medication, error)
	GetByID(id string) (*Medication, error)
	GetByEmployeeID(employeeID string) ([]Medication, error)
	GetExpiringSoon(now time.Time, within time.Duration) ([]Medication, error)
	Add(m *Medication) (string, error)
	Update(id string, apply func(*Medication)) error
	Refill(id string, newExpiryDate string) error
	Delete(id string) error
	GetHistory(medicationID string) ([]History, error)
}
