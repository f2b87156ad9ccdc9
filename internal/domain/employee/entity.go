package employee

import (
	"github.com/shopspring/decimal"

	"github.com/stafftrack/hr-core-go/internal/domain/record"
)

// Employee holds identity and HR attributes. The raw Role string is parsed
// through user.ParseRole at the access-control boundary.
type Employee struct {
	record.Meta
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"` // demo data is plaintext; hardening is out of scope
	Role      string `json:"role"`
	CompanyID string `json:"companyId"`
	TeamID    string `json:"teamId"`
	Phone     string `json:"phone,omitempty"`

	VacationDaysPerYear   int `json:"vacationDaysPerYear"`
	RemainingVacationDays int `json:"remainingVacationDays"`
	StatePaidLeaves       int `json:"statePaidLeaves"`

	BaseSalary *decimal.Decimal `json:"baseSalary,omitempty"`

	// Deactivated employees stay stored but drop out of default listings.
	Active bool `json:"active"`
}
