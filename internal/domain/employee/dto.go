package employee

import "github.com/shopspring/decimal"

// CreateEmployeeRequest carries the fields an HR/Admin user supplies when
// creating an employee record.
type CreateEmployeeRequest struct {
	Name                string `validate:"required"`
	Email               string `validate:"required,email"`
	Password            string
	Role                string `validate:"required"`
	CompanyID           string
	TeamID              string
	Phone               string
	VacationDaysPerYear int `validate:"gte=0"`
	StatePaidLeaves     int `validate:"gte=0"`
	BaseSalary          *decimal.Decimal
}

// UpdateEmployeeRequest merges non-nil fields into an existing record.
type UpdateEmployeeRequest struct {
	Name                  *string
	Email                 *string `validate:"omitempty,email"`
	Password              *string
	Role                  *string
	CompanyID             *string
	TeamID                *string
	Phone                 *string
	VacationDaysPerYear   *int `validate:"omitempty,gte=0"`
	RemainingVacationDays *int `validate:"omitempty,gte=0"`
	StatePaidLeaves       *int `validate:"omitempty,gte=0"`
	BaseSalary            *decimal.Decimal
}
