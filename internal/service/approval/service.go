// Package approval moves leave, claim and invoice requests through their
// state machines. Transitions only leave the pending state; the acting user
// must hold the scoped approval permission and must not own the request.
package approval

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/stafftrack/hr-core-go/internal/domain/claim"
	"github.com/stafftrack/hr-core-go/internal/domain/employee"
	"github.com/stafftrack/hr-core-go/internal/domain/leave"
	"github.com/stafftrack/hr-core-go/internal/domain/notification"
	"github.com/stafftrack/hr-core-go/internal/domain/record"
	"github.com/stafftrack/hr-core-go/internal/domain/user"
)

const msPerDay = 86400000

type Service struct {
	leaveRepo    leave.Repository
	claimRepo    claim.ClaimRepository
	invoiceRepo  claim.InvoiceRepository
	employeeRepo employee.Repository
	broadcaster  notification.Broadcaster
	logger       *logrus.Logger
}

func NewService(
	leaveRepo leave.Repository,
	claimRepo claim.ClaimRepository,
	invoiceRepo claim.InvoiceRepository,
	employeeRepo employee.Repository,
	broadcaster notification.Broadcaster,
	logger *logrus.Logger,
) *Service {
	return &Service{
		leaveRepo:    leaveRepo,
		claimRepo:    claimRepo,
		invoiceRepo:  invoiceRepo,
		employeeRepo: employeeRepo,
		broadcaster:  broadcaster,
		logger:       logger,
	}
}

// ApproveLeave transitions a pending leave to approved. Approving a leave
// of type "leave" deducts the inclusive day count from the employee's
// remaining vacation days, floored at zero. The deduction happens on the
// pending->approved edge only, so re-invoking on an already approved
// request fails with ErrAlreadyProcessed instead of double-deducting.
func (s *Service) ApproveLeave(sess user.Session, leaveID string) error {
	l, owner, err := s.guardLeave(sess, leaveID)
	if err != nil {
		return err
	}

	if err := s.leaveRepo.UpdateStatus(l.ID, leave.StatusApproved, sess.EmployeeID); err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}

	// Status write and balance write are two independent store mutations;
	// a failure between them leaves them out of sync. Accepted limitation
	// of the storage model.
	if l.Type == leave.TypeLeave {
		days := VacationDays(l.StartDate, l.EndDate)
		remaining := owner.RemainingVacationDays - days
		if remaining < 0 {
			remaining = 0
		}
		if err := s.employeeRepo.Update(owner.ID, employee.UpdateEmployeeRequest{RemainingVacationDays: &remaining}); err != nil {
			return fmt.Errorf("failed to deduct vacation days: %w", err)
		}
	}

	s.announce(notification.Broadcast{
		Title:      "Leave approved",
		Body:       fmt.Sprintf("Your %s request has been approved", l.Type),
		TargetType: notification.TargetEmployee,
		TargetID:   owner.ID,
		SenderID:   sess.EmployeeID,
	})
	return nil
}

// DeclineLeave transitions a pending leave to declined. Balances are never
// touched.
func (s *Service) DeclineLeave(sess user.Session, leaveID string) error {
	l, owner, err := s.guardLeave(sess, leaveID)
	if err != nil {
		return err
	}

	if err := s.leaveRepo.UpdateStatus(l.ID, leave.StatusDeclined, sess.EmployeeID); err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}

	s.announce(notification.Broadcast{
		Title:      "Leave declined",
		Body:       fmt.Sprintf("Your %s request has been declined", l.Type),
		TargetType: notification.TargetEmployee,
		TargetID:   owner.ID,
		SenderID:   sess.EmployeeID,
	})
	return nil
}

// ProcessClaim transitions a pending claim to processed.
func (s *Service) ProcessClaim(sess user.Session, claimID string) error {
	return s.settleClaim(sess, claimID, claim.ClaimStatusProcessed, "Claim processed")
}

// RejectClaim transitions a pending claim to rejected.
func (s *Service) RejectClaim(sess user.Session, claimID string) error {
	return s.settleClaim(sess, claimID, claim.ClaimStatusRejected, "Claim rejected")
}

// ApproveInvoice transitions a pending invoice to approved.
func (s *Service) ApproveInvoice(sess user.Session, invoiceID string) error {
	return s.settleInvoice(sess, invoiceID, claim.InvoiceStatusApproved, "Invoice approved")
}

// RejectInvoice transitions a pending invoice to rejected.
func (s *Service) RejectInvoice(sess user.Session, invoiceID string) error {
	return s.settleInvoice(sess, invoiceID, claim.InvoiceStatusRejected, "Invoice rejected")
}

func (s *Service) settleClaim(sess user.Session, claimID string, status claim.ClaimStatus, title string) error {
	c, err := s.claimRepo.GetByID(claimID)
	if err != nil {
		return fmt.Errorf("failed to get claim: %w", err)
	}
	if c == nil {
		return ErrRequestNotFound
	}
	owner, err := s.guardActor(sess, user.PermissionClaimProcess, c.EmployeeID)
	if err != nil {
		return err
	}
	if c.Status != claim.ClaimStatusPending {
		return claim.ErrClaimAlreadyProcessed
	}

	if err := s.claimRepo.UpdateStatus(c.ID, status, sess.EmployeeID); err != nil {
		return fmt.Errorf("failed to update claim status: %w", err)
	}

	s.announce(notification.Broadcast{
		Title:      title,
		Body:       fmt.Sprintf("Your claim %q has been %s", c.Title, status),
		TargetType: notification.TargetEmployee,
		TargetID:   owner.ID,
		SenderID:   sess.EmployeeID,
	})
	return nil
}

func (s *Service) settleInvoice(sess user.Session, invoiceID string, status claim.InvoiceStatus, title string) error {
	inv, err := s.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return fmt.Errorf("failed to get invoice: %w", err)
	}
	if inv == nil {
		return ErrRequestNotFound
	}
	owner, err := s.guardActor(sess, user.PermissionClaimProcess, inv.EmployeeID)
	if err != nil {
		return err
	}
	if inv.Status != claim.InvoiceStatusPending {
		return claim.ErrInvoiceAlreadyProcessed
	}

	if err := s.invoiceRepo.UpdateStatus(inv.ID, status, sess.EmployeeID); err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}

	s.announce(notification.Broadcast{
		Title:      title,
		Body:       fmt.Sprintf("Your invoice has been %s", status),
		TargetType: notification.TargetEmployee,
		TargetID:   owner.ID,
		SenderID:   sess.EmployeeID,
	})
	return nil
}

func (s *Service) guardLeave(sess user.Session, leaveID string) (*leave.Leave, *employee.Employee, error) {
	l, err := s.leaveRepo.GetByID(leaveID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	if l == nil {
		return nil, nil, ErrRequestNotFound
	}
	owner, err := s.guardActor(sess, user.PermissionLeaveApprove, l.EmployeeID)
	if err != nil {
		return nil, nil, err
	}
	if l.Status != leave.StatusPending {
		return nil, nil, leave.ErrAlreadyProcessed
	}
	return l, owner, nil
}

// guardActor enforces the shared transition guards: the actor holds the
// permission, is not the request's owner, and the owner falls inside the
// actor's visibility scope.
func (s *Service) guardActor(sess user.Session, perm user.Permission, ownerEmployeeID string) (*employee.Employee, error) {
	if !user.HasPermission(sess.Role, perm) {
		return nil, user.ErrPermissionDenied
	}
	if sess.EmployeeID != "" && sess.EmployeeID == ownerEmployeeID {
		return nil, ErrSelfApproval
	}
	owner, err := s.employeeRepo.GetByID(ownerEmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get request owner: %w", err)
	}
	if owner == nil {
		return nil, fmt.Errorf("request owner %s not found", ownerEmployeeID)
	}
	if !sess.CanActOn(owner.ID, owner.CompanyID, owner.TeamID) {
		return nil, user.ErrPermissionDenied
	}
	return owner, nil
}

// announce is fire-and-forget: a failing notification collaborator never
// blocks or rolls back the domain mutation.
func (s *Service) announce(b notification.Broadcast) {
	if s.broadcaster == nil {
		return
	}
	if err := s.broadcaster.Broadcast(b); err != nil {
		s.logger.WithError(err).WithField("title", b.Title).Warn("broadcast failed")
	}
}

// VacationDays is the inclusive day count of a leave interval:
// ceil((end-start)/86400000)+1 when both bounds parse, otherwise 1.
func VacationDays(startDate, endDate string) int {
	start, okS := record.ParseTimestamp(startDate)
	end, okE := record.ParseTimestamp(endDate)
	if !okS || !okE || end.Before(start) {
		return 1
	}
	ms := end.Sub(start).Milliseconds()
	return int(math.Ceil(float64(ms)/float64(msPerDay))) + 1
}
