package claim

// ClaimRepository is the claim record store contract.
type ClaimRepository interface {
	GetAll() ([]Claim, error)
	GetByID(id string) (*Claim, error)
	GetByEmployeeID(employeeID string) ([]Claim, error)
	GetPending() ([]Claim, error)
	Add(c *Claim) (string, error)
	UpdateStatus(id string, status ClaimStatus, processedBy string) error
	Delete(id string) error
}

// InvoiceRepository is the invoice record store contract.
type InvoiceRepository interface {
	GetAll() ([]Invoice, error)
	GetByID(id string) (*Invoice, error)
	GetByEmployeeID(employeeID string) ([]Invoice, error)
	GetPending() ([]Invoice, error)
	Add(i *Invoice) (string, error)
	UpdateStatus(id string, status InvoiceStatus, approvedBy string) error
	Delete(id string) error
}
