package employee

// Repository is the employee record store contract. Lookups that find
// nothing return nil without an error.
type Repository interface {
	GetAll() ([]Employee, error)
	GetAllIncludingInactive() ([]Employee, error)
	GetByID(id string) (*Employee, error)
	GetByEmail(email string) (*Employee, error)
	GetByTeamID(teamID string) ([]Employee, error)
	GetByCompanyID(companyID string) ([]Employee, error)
	Add(e *Employee) (string, error)
	Update(id string, req UpdateEmployeeRequest) error
	Deactivate(id string) error
	Delete(id string) error
}
