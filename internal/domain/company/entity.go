package company

import "github.com/stafftrack/hr-core-go/internal/domain/record"

// Company is the top-level organizational unit.
type Company struct {
	record.Meta
	Name string `json:"name"`
}

// Team belongs to one company and optionally references a managing
// employee. An employee is assigned to at most one team at a time; the
// constraint is enforced at assignment time by the employee service.
type Team struct {
	record.Meta
	Name      string `json:"name"`
	CompanyID string `json:"companyId"`
	ManagerID string `json:"managerId,omitempty"`
}
