package employee

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/hr-core-go/internal/domain/company"
	"github.com/stafftrack/hr-core-go/internal/domain/employee"
	"github.com/stafftrack/hr-core-go/internal/domain/user"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
	"github.com/stafftrack/hr-core-go/internal/pkg/validator"
	"github.com/stafftrack/hr-core-go/internal/repository/kvstore"
)

type fakeScheduler struct {
	monthly   map[string]int
	cancelled []string
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{monthly: make(map[string]int)}
}

func (f *fakeScheduler) ScheduleReminder(id, title string, at time.Time) error { return nil }

func (f *fakeScheduler) ScheduleMonthlyReminder(id, title string, dayOfMonth int) error {
	f.monthly[id] = dayOfMonth
	return nil
}

func (f *fakeScheduler) CancelReminder(id string) {
	f.cancelled = append(f.cancelled, id)
}

type employeeFixture struct {
	svc       *Service
	repo      *kvstore.EmployeeRepository
	scheduler *fakeScheduler
	companyID string
	teamID    string
}

func newEmployeeFixture(t *testing.T) *employeeFixture {
	t.Helper()

	store := kv.NewMemoryStore()
	companies := kvstore.NewCompanyRepository(store)
	teams := kvstore.NewTeamRepository(store)

	companyID, err := companies.Add(&company.Company{Name: "Acme"})
	require.NoError(t, err)
	teamID, err := teams.Add(&company.Team{Name: "Engineering", CompanyID: companyID})
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	f := &employeeFixture{
		repo:      kvstore.NewEmployeeRepository(store),
		scheduler: newFakeScheduler(),
		companyID: companyID,
		teamID:    teamID,
	}
	f.svc = NewService(f.repo, teams, f.scheduler, logger, 25)
	return f
}

func adminSession() user.Session {
	return user.Session{ID: "admin-1", Role: user.RoleAdmin, EmployeeID: "admin-1"}
}

func (f *employeeFixture) createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:                "Ana Silva",
		Email:               "ana@acme.test",
		Role:                "employee",
		CompanyID:           f.companyID,
		TeamID:              f.teamID,
		VacationDaysPerYear: 25,
	}
}

func TestCreate_StartsBalanceAtYearlyAllowance(t *testing.T) {
	f := newEmployeeFixture(t)

	created, err := f.svc.Create(adminSession(), f.createRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 25, created.RemainingVacationDays)
	assert.True(t, created.Active)

	assert.Equal(t, 25, f.scheduler.monthly["payroll:"+created.ID])
}

func TestCreate_RequiresManagePermission(t *testing.T) {
	f := newEmployeeFixture(t)

	sess := user.Session{Role: user.RoleEmployee, EmployeeID: "emp-1"}
	_, err := f.svc.Create(sess, f.createRequest())
	assert.ErrorIs(t, err, user.ErrPermissionDenied)
}

func TestCreate_RejectsUnknownRole(t *testing.T) {
	f := newEmployeeFixture(t)

	req := f.createRequest()
	req.Role = "superuser"
	_, err := f.svc.Create(adminSession(), req)
	assert.ErrorIs(t, err, employee.ErrUnknownRole)
}

func TestCreate_RejectsInvalidRequest(t *testing.T) {
	f := newEmployeeFixture(t)

	req := f.createRequest()
	req.Email = "not-an-email"
	_, err := f.svc.Create(adminSession(), req)
	assert.True(t, validator.IsValidation(err))
}

func TestCreate_TeamMustBelongToCompany(t *testing.T) {
	f := newEmployeeFixture(t)

	req := f.createRequest()
	req.CompanyID = "other-company"
	_, err := f.svc.Create(adminSession(), req)
	assert.Error(t, err)
}

func TestUpdate_SelfEditAllowed(t *testing.T) {
	f := newEmployeeFixture(t)

	created, err := f.svc.Create(adminSession(), f.createRequest())
	require.NoError(t, err)

	self := user.Session{Role: user.RoleEmployee, EmployeeID: created.ID}
	phone := "555-0100"
	require.NoError(t, f.svc.Update(self, created.ID, employee.UpdateEmployeeRequest{Phone: &phone}))

	stored, _ := f.repo.GetByID(created.ID)
	assert.Equal(t, phone, stored.Phone)

	// Editing someone else without the manage permission is denied.
	err = f.svc.Update(self, "someone-else", employee.UpdateEmployeeRequest{Phone: &phone})
	assert.ErrorIs(t, err, user.ErrPermissionDenied)
}

func TestDeactivate_CancelsPayrollReminder(t *testing.T) {
	f := newEmployeeFixture(t)

	created, err := f.svc.Create(adminSession(), f.createRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.Deactivate(adminSession(), created.ID))
	assert.Contains(t, f.scheduler.cancelled, "payroll:"+created.ID)

	active, _ := f.repo.GetAll()
	assert.Empty(t, active)
}

func TestList_ScopedByRole(t *testing.T) {
	f := newEmployeeFixture(t)

	created, err := f.svc.Create(adminSession(), f.createRequest())
	require.NoError(t, err)

	req := f.createRequest()
	req.Name = "Bo Chen"
	req.Email = "bo@acme.test"
	req.TeamID = ""
	other, err := f.svc.Create(adminSession(), req)
	require.NoError(t, err)

	all, err := f.svc.List(adminSession())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	manager := user.Session{Role: user.RoleManager, EmployeeID: "mgr-1", TeamID: f.teamID}
	scoped, err := f.svc.List(manager)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, created.ID, scoped[0].ID)

	self := user.Session{Role: user.RoleEmployee, EmployeeID: other.ID}
	own, err := f.svc.List(self)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, other.ID, own[0].ID)
}
