package leave

import "github.com/stafftrack/hr-core-go/internal/domain/record"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

type Type string

const (
	TypeLeave         Type = "leave" // the only type that consumes vacation days
	TypePermission    Type = "permission"
	TypeSickLeave     Type = "sick_leave"
	TypeCarerLeave    Type = "carer_leave"
	TypeAuthorization Type = "authorization"
)

// ParseType validates a raw type string against the closed enumeration.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeLeave, TypePermission, TypeSickLeave, TypeCarerLeave, TypeAuthorization:
		return Type(s), nil
	}
	return "", ErrUnknownType
}

// Leave is an absence request. DateTime is the primary instant; StartDate
// and EndDate bound the interval when both are known. A leave missing either
// bound is never considered currently active.
type Leave struct {
	record.Meta
	EmployeeID string `json:"employeeId"`
	DateTime   string `json:"dateTime"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
	Status     Status `json:"status"`
	Type       Type   `json:"type"`
	Reason     string `json:"reason,omitempty"`
	ApprovedBy string `json:"approvedBy,omitempty"`
	ApprovedAt string `json:"approvedAt,omitempty"`
}
