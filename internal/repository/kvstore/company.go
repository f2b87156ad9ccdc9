package kvstore

import (
	"strings"

	"github.com/stafftrack/hr-core-go/internal/domain/company"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
)

// CompanyRepository stores companies under the "companies" key.
type CompanyRepository struct {
	col collection[company.Company, *company.Company]
}

func NewCompanyRepository(store kv.Store) *CompanyRepository {
	return &CompanyRepository{col: newCollection[company.Company](store, keyCompanies)}
}

func (r *CompanyRepository) GetAll() ([]company.Company, error) {
	return r.col.getAll()
}

func (r *CompanyRepository) GetByID(id string) (*company.Company, error) {
	return r.col.getByID(id)
}

func (r *CompanyRepository) Add(c *company.Company) (string, error) {
	all, err := r.col.getAll()
	if err != nil {
		return "", err
	}
	for _, other := range all {
		if strings.EqualFold(other.Name, c.Name) {
			return "", company.ErrNameExists
		}
	}
	return r.col.add(c)
}

func (r *CompanyRepository) Update(id string, apply func(*company.Company)) error {
	_, err := r.col.update(id, apply)
	return err
}

func (r *CompanyRepository) Delete(id string) error {
	_, err := r.col.delete(id)
	return err
}

// TeamRepository stores teams under the "teams" key. A team must reference
// an existing company; team names are unique within their company.
type TeamRepository struct {
	col       collection[company.Team, *company.Team]
	companies collection[company.Company, *company.Company]
}

func NewTeamRepository(store kv.Store) *TeamRepository {
	return &TeamRepository{
		col:       newCollection[company.Team](store, keyTeams),
		companies: newCollection[company.Company](store, keyCompanies),
	}
}

func (r *TeamRepository) GetAll() ([]company.Team, error) {
	return r.col.getAll()
}

func (r *TeamRepository) GetByID(id string) (*company.Team, error) {
	return r.col.getByID(id)
}

func (r *TeamRepository) GetByCompanyID(companyID string) ([]company.Team, error) {
	all, err := r.col.getAll()
	if err != nil {
		return nil, err
	}
	var matched []company.Team
	for _, t := range all {
		if t.CompanyID == companyID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *TeamRepository) Add(t *company.Team) (string, error) {
	parent, err := r.companies.getByID(t.CompanyID)
	if err != nil {
		return "", err
	}
	if parent == nil {
		return "", company.ErrUnknownCompany
	}
	siblings, err := r.GetByCompanyID(t.CompanyID)
	if err != nil {
		return "", err
	}
	for _, other := range siblings {
		if strings.EqualFold(other.Name, t.Name) {
			return "", company.ErrTeamNameExists
		}
	}
	return r.col.add(t)
}

func (r *TeamRepository) Update(id string, apply func(*company.Team)) error {
	_, err := r.col.update(id, apply)
	return err
}

func (r *TeamRepository) Delete(id string) error {
	_, err := r.col.delete(id)
	return err
}
