package leave

import "time"

// Repository is the leave record store contract.
type Repository interface {
	GetAll() ([]Leave, error)
	GetByID(id string) (*Leave, error)
	GetByEmployeeID(employeeID string) ([]Leave, error)
	GetPending() ([]Leave, error)
	GetUpcoming(now time.Time) ([]Leave, error)
	Add(l *Leave) (string, error)
	UpdateStatus(id string, status Status, approvedBy string) error
	Delete(id string) error
}
