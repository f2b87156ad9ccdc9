package kvstore

import (
	"time"

	"github.com/stafftrack/hr-core-go/internal/domain/claim"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
)

// ClaimRepository stores claims under the "claims" key.
type ClaimRepository struct {
	col collection[claim.Claim, *claim.Claim]
}

func NewClaimRepository(store kv.Store) *ClaimRepository {
	return &ClaimRepository{col: newCollection[claim.Claim](store, keyClaims)}
}

func (r *ClaimRepository) GetAll() ([]claim.Claim, error) {
	return r.col.getAll()
}

func (r *ClaimRepository) GetByID(id string) (*claim.Claim, error) {
	return r.col.getByID(id)
}

func (r *ClaimRepository) GetByEmployeeID(employeeID string) ([]claim.Claim, error) {
	return r.filter(func(c claim.Claim) bool { return c.EmployeeID == employeeID })
}

func (r *ClaimRepository) GetPending() ([]claim.Claim, error) {
	return r.filter(func(c claim.Claim) bool { return c.Status == claim.ClaimStatusPending })
}

func (r *ClaimRepository) Add(c *claim.Claim) (string, error) {
	if c.Amount.IsNegative() {
		return "", claim.ErrNegativeAmount
	}
	if c.Status == "" {
		c.Status = claim.ClaimStatusPending
	}
	return r.col.add(c)
}

func (r *ClaimRepository) UpdateStatus(id string, status claim.ClaimStatus, processedBy string) error {
	_, err := r.col.update(id, func(c *claim.Claim) {
		c.Status = status
		c.ProcessedBy = processedBy
	})
	return err
}

func (r *ClaimRepository) Delete(id string) error {
	_, err := r.col.delete(id)
	return err
}

func (r *ClaimRepository) filter(keep func(claim.Claim) bool) ([]claim.Claim, error) {
	all, err := r.col.getAll()
	if err != nil {
		return nil, err
	}
	var matched []claim.Claim
	for _, c := range all {
		if keep(c) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// InvoiceRepository stores invoices under the "invoices" key.
type InvoiceRepository struct {
	col collection[claim.Invoice, *claim.Invoice]
}

func NewInvoiceRepository(store kv.Store) *InvoiceRepository {
	return &InvoiceRepository{col: newCollection[claim.Invoice](store, keyInvoices)}
}

func (r *InvoiceRepository) GetAll() ([]claim.Invoice, error) {
	return r.col.getAll()
}

func (r *InvoiceRepository) GetByID(id string) (*claim.Invoice, error) {
	return r.col.getByID(id)
}

func (r *InvoiceRepository) GetByEmployeeID(employeeID string) ([]claim.Invoice, error) {
	return r.filterInvoices(func(i claim.Invoice) bool { return i.EmployeeID == employeeID })
}

func (r *InvoiceRepository) GetPending() ([]claim.Invoice, error) {
	return r.filterInvoices(func(i claim.Invoice) bool { return i.Status == claim.InvoiceStatusPending })
}

func (r *InvoiceRepository) Add(i *claim.Invoice) (string, error) {
	if i.Amount.IsNegative() {
		return "", claim.ErrNegativeAmount
	}
	if i.Status == "" {
		i.Status = claim.InvoiceStatusPending
	}
	if i.DateTime == "" {
		i.DateTime = time.Now().Format(time.RFC3339)
	}
	return r.col.add(i)
}

func (r *InvoiceRepository) UpdateStatus(id string, status claim.InvoiceStatus, approvedBy string) error {
	_, err := r.col.update(id, func(i *claim.Invoice) {
		i.Status = status
		i.ApprovedBy = approvedBy
	})
	return err
}

func (r *InvoiceRepository) Delete(id string) error {
	_, err := r.col.delete(id)
	return err
}

func (r *InvoiceRepository) filterInvoices(keep func(claim.Invoice) bool) ([]claim.Invoice, error) {
	all, err := r.col.getAll()
	if err != nil {
		return nil, err
	}
	var matched []claim.Invoice
	for _, i := range all {
		if keep(i) {
			matched = append(matched, i)
		}
	}
	return matched, nil
}
