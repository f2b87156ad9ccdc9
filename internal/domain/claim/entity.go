package claim

import (
	"github.com/shopspring/decimal"

	"github.com/stafftrack/hr-core-go/internal/domain/record"
)

type ClaimStatus string

const (
	ClaimStatusPending   ClaimStatus = "pending"
	ClaimStatusProcessed ClaimStatus = "processed"
	ClaimStatusRejected  ClaimStatus = "rejected"
)

type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusApproved InvoiceStatus = "approved"
	InvoiceStatusRejected InvoiceStatus = "rejected"
)

// Claim is an expense reimbursement request.
type Claim struct {
	record.Meta
	EmployeeID  string          `json:"employeeId"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	IsUrgent    bool            `json:"isUrgent"`
	Status      ClaimStatus     `json:"status"`
	PhotoURI    string          `json:"photoUri,omitempty"`
	DateTime    string          `json:"dateTime"`
	ProcessedBy string          `json:"processedBy,omitempty"`
}

// Invoice is a supplier invoice submitted for approval.
type Invoice struct {
	record.Meta
	EmployeeID string          `json:"employeeId"`
	Vendor     string          `json:"vendor,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	IsUrgent   bool            `json:"isUrgent"`
	Status     InvoiceStatus   `json:"status"`
	PhotoURI   string          `json:"photoUri,omitempty"`
	DateTime   string          `json:"dateTime"`
	ApprovedBy string          `json:"approvedBy,omitempty"`
}
