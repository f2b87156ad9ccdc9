package medication

import "github.com/stafftrack/hr-core-go/internal/domain/record"

// Medication is a prescription record tied to an employee. Refills push
// ExpiryDate forward and are logged in the prescription history.
type Medication struct {
	record.Meta
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Dosage     string `json:"dosage,omitempty"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// History is one row of the append-only prescription history log.
type History struct {
	record.Meta
	MedicationID string               `json:"medicationId"`
	EmployeeID   string               `json:"employeeId"`
	Action       record.HistoryAction `json:"action"`
}
