package kvstore

import (
	"strings"

	"github.com/stafftrack/hr-core-go/internal/domain/employee"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
)

// EmployeeRepository stores employees under the "employees" key. Email
// uniqueness is checked case-insensitively on add and update.
type EmployeeRepository struct {
	col collection[employee.Employee, *employee.Employee]
}

func NewEmployeeRepository(store kv.Store) *EmployeeRepository {
	return &EmployeeRepository{col: newCollection[employee.Employee](store, keyEmployees)}
}

// GetAll returns active employees only. Deactivated records must be asked
// for explicitly via GetAllIncludingInactive.
func (r *EmployeeRepository) GetAll() ([]employee.Employee, error) {
	all, err := r.col.getAll()
	if err != nil {
		return nil, err
	}
	active := make([]employee.Employee, 0, len(all))
	for _, e := range all {
		if e.Active {
			active = append(active, e)
		}
	}
	return active, nil
}

func (r *EmployeeRepository) GetAllIncludingInactive() ([]employee.Employee, error) {
	return r.col.getAll()
}

func (r *EmployeeRepository) GetByID(id string) (*employee.Employee, error) {
	return r.col.getByID(id)
}

func (r *EmployeeRepository) GetByEmail(email string) (*employee.Employee, error) {
	all, err := r.col.getAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Email, email) {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *EmployeeRepository) GetByTeamID(teamID string) ([]employee.Employee, error) {
	return r.filterActive(func(e employee.Employee) bool { return e.TeamID == teamID })
}

func (r *EmployeeRepository) GetByCompanyID(companyID string) ([]employee.Employee, error) {
	return r.filterActive(func(e employee.Employee) bool { return e.CompanyID == companyID })
}

func (r *EmployeeRepository) filterActive(keep func(employee.Employee) bool) ([]employee.Employee, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	var matched []employee.Employee
	for _, e := range all {
		if keep(e) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Add stores a new active employee. The store is left unchanged when the
// email is already taken.
func (r *EmployeeRepository) Add(e *employee.Employee) (string, error) {
	taken, err := r.emailTaken(e.Email, "")
	if err != nil {
		return "", err
	}
	if taken {
		return "", employee.ErrEmailExists
	}
	e.Active = true
	return r.col.add(e)
}

// Update merges the non-nil request fields. Updating a missing id is a
// no-op.
func (r *EmployeeRepository) Update(id string, req employee.UpdateEmployeeRequest) error {
	if req.RemainingVacationDays != nil && *req.RemainingVacationDays < 0 {
		return employee.ErrNegativeBalance
	}
	if req.Email != nil {
		taken, err := r.emailTaken(*req.Email, id)
		if err != nil {
			return err
		}
		if taken {
			return employee.ErrEmailExists
		}
	}
	_, err := r.col.update(id, func(e *employee.Employee) {
		applyEmployeeUpdate(e, req)
	})
	return err
}

// Deactivate soft-deletes: the record stays stored but drops out of
// default listings.
func (r *EmployeeRepository) Deactivate(id string) error {
	var alreadyInactive bool
	_, err := r.col.update(id, func(e *employee.Employee) {
		alreadyInactive = !e.Active
		e.Active = false
	})
	if err != nil {
		return err
	}
	if alreadyInactive {
		return employee.ErrAlreadyInactive
	}
	return nil
}

func (r *EmployeeRepository) Delete(id string) error {
	_, err := r.col.delete(id)
	return err
}

func (r *EmployeeRepository) emailTaken(email, excludeID string) (bool, error) {
	if email == "" {
		return false, nil
	}
	all, err := r.col.getAll()
	if err != nil {
		return false, err
	}
	for _, other := range all {
		if other.ID != excludeID && strings.EqualFold(other.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func applyEmployeeUpdate(e *employee.Employee, req employee.UpdateEmployeeRequest) {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Password != nil {
		e.Password = *req.Password
	}
	if req.Role != nil {
		e.Role = *req.Role
	}
	if req.CompanyID != nil {
		e.CompanyID = *req.CompanyID
	}
	if req.TeamID != nil {
		e.TeamID = *req.TeamID
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.VacationDaysPerYear != nil {
		e.VacationDaysPerYear = *req.VacationDaysPerYear
	}
	if req.RemainingVacationDays != nil {
		e.RemainingVacationDays = *req.RemainingVacationDays
	}
	if req.StatePaidLeaves != nil {
		e.StatePaidLeaves = *req.StatePaidLeaves
	}
	if req.BaseSalary != nil {
		e.BaseSalary = req.BaseSalary
	}
}
