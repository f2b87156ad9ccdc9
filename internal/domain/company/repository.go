package company

// CompanyRepository is the company record store contract.
type CompanyRepository interface {
	GetAll() ([]Company, error)
	GetByID(id string) (*Company, error)
	Add(c *Company) (string, error)
	Update(id string, apply func(*Company)) error
	Delete(id string) error
}

// TeamRepository is the team record store contract.
type TeamRepository interface {
	GetAll() ([]Team, error)
	GetByID(id string) (*Team, error)
	GetByCompanyID(companyID string) ([]Team, error)
	Add(t *Team) (string, error)
	Update(id string, apply func(*Team)) error
	Delete(id string) error
}
