package illness

import "time"

// Repository is the illness record store contract. Mutations append a
// History row as a side effect.
type Repository interface {
	GetAll() ([]Illness, error)
	GetByID(id string) (*Illness, error)
	GetByEmployeeID(employeeID string) ([]Illness, error)
	GetExpiringSoon(now time.Time, within time.Duration) ([]Illness, error)
	Add(i *Illness) (string, error)
	Update(id string, apply func(*Illness)) error
	Delete(id string) error
	GetHistory(illnessID string) ([]History, error)
}
