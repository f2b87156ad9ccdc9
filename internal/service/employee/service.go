// Package employee implements the employee management operations on top of
// the record store: creation with uniqueness and role checks, profile
// updates, team assignment and soft deactivation.
package employee

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/stafftrack/hr-core-go/internal/domain/company"
	"github.com/stafftrack/hr-core-go/internal/domain/employee"
	"github.com/stafftrack/hr-core-go/internal/domain/notification"
	"github.com/stafftrack/hr-core-go/internal/domain/user"
	"github.com/stafftrack/hr-core-go/internal/pkg/validator"
)

type Service struct {
	repo       employee.Repository
	teamRepo   company.TeamRepository
	reminders  notification.ReminderScheduler
	logger     *logrus.Logger
	payrollDay int
}

func NewService(
	repo employee.Repository,
	teamRepo company.TeamRepository,
	reminders notification.ReminderScheduler,
	logger *logrus.Logger,
	payrollDay int,
) *Service {
	return &Service{
		repo:       repo,
		teamRepo:   teamRepo,
		reminders:  reminders,
		logger:     logger,
		payrollDay: payrollDay,
	}
}

// Create adds an employee record. Requires the employee.manage permission.
// The remaining vacation balance starts at the yearly allowance.
func (s *Service) Create(sess user.Session, req employee.CreateEmployeeRequest) (*employee.Employee, error) {
	if !user.HasPermission(sess.Role, user.PermissionEmployeeManage) {
		return nil, user.ErrPermissionDenied
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if _, err := user.ParseRole(req.Role); err != nil {
		return nil, fmt.Errorf("%w: %s", employee.ErrUnknownRole, req.Role)
	}
	if err := s.checkTeamAssignment(req.TeamID, req.CompanyID); err != nil {
		return nil, err
	}

	e := &employee.Employee{
		Name:                  req.Name,
		Email:                 req.Email,
		Password:              req.Password,
		Role:                  req.Role,
		CompanyID:             req.CompanyID,
		TeamID:                req.TeamID,
		Phone:                 req.Phone,
		VacationDaysPerYear:   req.VacationDaysPerYear,
		RemainingVacationDays: req.VacationDaysPerYear,
		StatePaidLeaves:       req.StatePaidLeaves,
		BaseSalary:            req.BaseSalary,
	}
	id, err := s.repo.Add(e)
	if err != nil {
		return nil, err
	}

	s.schedulePayrollReminder(id, e.Name)
	return e, nil
}

// Update merges non-nil fields into the record. Requires employee.manage
// unless the session edits its own profile.
func (s *Service) Update(sess user.Session, id string, req employee.UpdateEmployeeRequest) error {
	editingSelf := sess.EmployeeID != "" && sess.EmployeeID == id
	if !editingSelf && !user.HasPermission(sess.Role, user.PermissionEmployeeManage) {
		return user.ErrPermissionDenied
	}
	if err := validator.Struct(req); err != nil {
		return err
	}
	if req.Role != nil {
		if _, err := user.ParseRole(*req.Role); err != nil {
			return fmt.Errorf("%w: %s", employee.ErrUnknownRole, *req.Role)
		}
	}
	if req.TeamID != nil && *req.TeamID != "" {
		existing, err := s.repo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		companyID := existing.CompanyID
		if req.CompanyID != nil {
			companyID = *req.CompanyID
		}
		if err := s.checkTeamAssignment(*req.TeamID, companyID); err != nil {
			return err
		}
	}
	return s.repo.Update(id, req)
}

// Deactivate soft-deletes the employee and cancels their payroll reminder.
func (s *Service) Deactivate(sess user.Session, id string) error {
	if !user.HasPermission(sess.Role, user.PermissionEmployeeManage) {
		return user.ErrPermissionDenied
	}
	if err := s.repo.Deactivate(id); err != nil {
		return err
	}
	if s.reminders != nil {
		s.reminders.CancelReminder(payrollReminderID(id))
	}
	return nil
}

// List returns the employees visible to the session, scoped by role.
func (s *Service) List(sess user.Session) ([]employee.Employee, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	visible := make([]employee.Employee, 0, len(all))
	for _, e := range all {
		if sess.CanSee(e.ID, e.CompanyID, e.TeamID) {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

// An employee belongs to at most one team, and that team must belong to
// the employee's company. Enforced here, at assignment time.
func (s *Service) checkTeamAssignment(teamID, companyID string) error {
	if teamID == "" {
		return nil
	}
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return fmt.Errorf("team %s not found", teamID)
	}
	if team.CompanyID != companyID {
		return fmt.Errorf("team %s belongs to a different company", teamID)
	}
	return nil
}

func (s *Service) schedulePayrollReminder(employeeID, name string) {
	if s.reminders == nil || s.payrollDay == 0 {
		return
	}
	title := fmt.Sprintf("Payroll due for %s", name)
	if err := s.reminders.ScheduleMonthlyReminder(payrollReminderID(employeeID), title, s.payrollDay); err != nil {
		s.logger.WithError(err).WithField("employee", employeeID).Warn("failed to schedule payroll reminder")
	}
}

func payrollReminderID(employeeID string) string {
	return "payroll:" + employeeID
}
