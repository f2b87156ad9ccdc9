package illness

import "github.com/stafftrack/hr-core-go/internal/domain/record"

// Illness is a medical absence record. There is no pending state: an illness
// is effective from IssueDate, and open-ended while ExpiryDate is empty.
type Illness struct {
	record.Meta
	EmployeeID  string `json:"employeeId"`
	IssueDate   string `json:"issueDate"`
	ExpiryDate  string `json:"expiryDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// History is one row of the append-only illness history log, written on
// every mutation of the parent record.
type History struct {
	record.Meta
	IllnessID  string               `json:"illnessId"`
	EmployeeID string               `json:"employeeId"`
	Action     record.HistoryAction `json:"action"`
}
