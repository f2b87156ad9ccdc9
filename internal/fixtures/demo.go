// Package fixtures seeds a demo data set: one company with two teams and
// four employees covering every role, plus sample leaves, an illness, a
// claim, an invoice and a prescription.
package fixtures

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafftrack/hr-core-go/internal/domain/claim"
	"github.com/stafftrack/hr-core-go/internal/domain/company"
	"github.com/stafftrack/hr-core-go/internal/domain/employee"
	"github.com/stafftrack/hr-core-go/internal/domain/illness"
	"github.com/stafftrack/hr-core-go/internal/domain/leave"
	"github.com/stafftrack/hr-core-go/internal/domain/medication"
	"github.com/stafftrack/hr-core-go/internal/domain/user"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// SeededIDs holds the identifiers of the seeded records.
type SeededIDs struct {
	CompanyID   string
	TeamIDs     map[string]string // team name -> id
	EmployeeIDs map[string]string // email -> id
}

type Repos struct {
	Employees   employee.Repository
	Companies   company.CompanyRepository
	Teams       company.TeamRepository
	Leaves      leave.Repository
	Illnesses   illness.Repository
	Claims      claim.ClaimRepository
	Invoices    claim.InvoiceRepository
	Medications medication.Repository
}

// Seed populates an empty store with the demo data set. Passwords are
// plaintext sample values; credential handling is outside the core.
func Seed(r Repos, now time.Time) (*SeededIDs, error) {
	ids := &SeededIDs{
		TeamIDs:     make(map[string]string),
		EmployeeIDs: make(map[string]string),
	}

	companyID, err := r.Companies.Add(&company.Company{Name: "Acme Works"})
	if err != nil {
		return nil, fmt.Errorf("failed to seed company: %w", err)
	}
	ids.CompanyID = companyID

	for _, name := range []string{"Engineering", "Operations"} {
		teamID, err := r.Teams.Add(&company.Team{Name: name, CompanyID: companyID})
		if err != nil {
			return nil, fmt.Errorf("failed to seed team %s: %w", name, err)
		}
		ids.TeamIDs[name] = teamID
	}

	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	seedEmployees := []employee.Employee{
		{
			Name: "Ada Admin", Email: "ada@acme.test", Password: "admin123",
			Role: string(user.RoleAdmin), CompanyID: companyID,
			VacationDaysPerYear: 25, RemainingVacationDays: 25, StatePaidLeaves: 3,
			BaseSalary: decimalPtr(decimal.NewFromInt(5200)),
		},
		{
			Name: "Rita Human", Email: "rita@acme.test", Password: "rh123",
			Role: string(user.RoleRH), CompanyID: companyID,
			VacationDaysPerYear: 25, RemainingVacationDays: 20, StatePaidLeaves: 3,
			BaseSalary: decimalPtr(decimal.NewFromInt(4100)),
		},
		{
			Name: "Mark Manager", Email: "mark@acme.test", Password: "manager123",
			Role: string(user.RoleManager), CompanyID: companyID, TeamID: ids.TeamIDs["Engineering"],
			VacationDaysPerYear: 25, RemainingVacationDays: 18, StatePaidLeaves: 3,
			BaseSalary: decimalPtr(decimal.NewFromInt(4600)),
		},
		{
			Name: "Eve Engineer", Email: "eve@acme.test", Password: "employee123",
			Role: string(user.RoleEmployee), CompanyID: companyID, TeamID: ids.TeamIDs["Engineering"],
			VacationDaysPerYear: 25, RemainingVacationDays: 11, StatePaidLeaves: 3,
			BaseSalary: decimalPtr(decimal.NewFromInt(3500)),
		},
	}
	for i := range seedEmployees {
		id, err := r.Employees.Add(&seedEmployees[i])
		if err != nil {
			return nil, fmt.Errorf("failed to seed employee %s: %w", seedEmployees[i].Email, err)
		}
		ids.EmployeeIDs[seedEmployees[i].Email] = id
	}

	// Update manager reference now that the employee exists.
	if err := r.Teams.Update(ids.TeamIDs["Engineering"], func(t *company.Team) {
		t.ManagerID = ids.EmployeeIDs["mark@acme.test"]
	}); err != nil {
		return nil, fmt.Errorf("failed to set team manager: %w", err)
	}

	eveID := ids.EmployeeIDs["eve@acme.test"]
	markID := ids.EmployeeIDs["mark@acme.test"]

	seedLeaves := []leave.Leave{
		{
			EmployeeID: eveID, Type: leave.TypeLeave, Status: leave.StatusApproved,
			DateTime: day(-1), StartDate: day(-1), EndDate: day(2),
			Reason: "Family trip",
		},
		{
			EmployeeID: markID, Type: leave.TypePermission, Status: leave.StatusPending,
			DateTime: day(5), StartDate: day(5), EndDate: day(5),
			Reason: "Medical appointment",
		},
		{
			EmployeeID: eveID, Type: leave.TypeLeave, Status: leave.StatusPending,
			DateTime: day(20), StartDate: day(20), EndDate: day(24),
			Reason: "Autumn holidays",
		},
	}
	for i := range seedLeaves {
		if _, err := r.Leaves.Add(&seedLeaves[i]); err != nil {
			return nil, fmt.Errorf("failed to seed leave: %w", err)
		}
	}

	if _, err := r.Illnesses.Add(&illness.Illness{
		EmployeeID:  markID,
		IssueDate:   day(-2),
		ExpiryDate:  day(1),
		Description: "Seasonal flu",
	}); err != nil {
		return nil, fmt.Errorf("failed to seed illness: %w", err)
	}

	if _, err := r.Claims.Add(&claim.Claim{
		EmployeeID: eveID, Title: "Conference travel",
		Amount: decimal.NewFromInt(240), IsUrgent: true,
		DateTime: day(-3),
	}); err != nil {
		return nil, fmt.Errorf("failed to seed claim: %w", err)
	}

	if _, err := r.Invoices.Add(&claim.Invoice{
		EmployeeID: markID, Vendor: "Office Supplies SARL",
		Amount: decimal.NewFromInt(89), DateTime: day(-1),
	}); err != nil {
		return nil, fmt.Errorf("failed to seed invoice: %w", err)
	}

	if _, err := r.Medications.Add(&medication.Medication{
		EmployeeID: markID, Name: "Antihistamine", Dosage: "10mg daily",
		IssueDate: day(-30), ExpiryDate: day(5),
	}); err != nil {
		return nil, fmt.Errorf("failed to seed medication: %w", err)
	}

	return ids, nil
}
