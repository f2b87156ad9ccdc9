// Package grouping shapes flat, already role-filtered record lists into a
// company -> team hierarchy for list screens. Input order is preserved
// inside every leaf group; callers sort before grouping.
package grouping

import (
	"github.com/stafftrack/hr-core-go/internal/domain/company"
	"github.com/stafftrack/hr-core-go/internal/domain/employee"
	"github.com/stafftrack/hr-core-go/internal/domain/user"
)

// Fallback labels for records whose employee has no org assignment.
const (
	FallbackCompany = "Other"
	FallbackTeam    = "No team"
)

type TeamGroup[R any] struct {
	TeamID  string
	Name    string
	Records []R
}

type CompanyGroup[R any] struct {
	CompanyID string
	Name      string
	Teams     []TeamGroup[R]
}

// ByOrganization nests records under their owner's company and team.
// Affiliation is joined from the employee reference collection at call
// time; records carry no transient org fields. Only admin and rh sessions
// see the org hierarchy: every other role gets a single flat pseudo-group
// so organization-wide structure never leaks to employees or managers.
func ByOrganization[R any](
	sess user.Session,
	records []R,
	ownerID func(R) string,
	employees []employee.Employee,
	companies []company.Company,
	teams []company.Team,
) []CompanyGroup[R] {
	if len(records) == 0 {
		return nil
	}

	if !sess.IsAdmin() && !sess.IsRH() {
		return []CompanyGroup[R]{{
			Name:  FallbackCompany,
			Teams: []TeamGroup[R]{{Name: FallbackTeam, Records: records}},
		}}
	}

	employeeByID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		employeeByID[e.ID] = e
	}
	companyNames := make(map[string]string, len(companies))
	for _, c := range companies {
		companyNames[c.ID] = c.Name
	}
	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	// Groups appear in order of first occurrence so the output is stable
	// for a given input order.
	var groups []CompanyGroup[R]
	companyIdx := make(map[string]int)

	for _, r := range records {
		emp, known := employeeByID[ownerID(r)]

		companyID, companyName := "", FallbackCompany
		teamID, teamName := "", FallbackTeam
		if known {
			if name, ok := companyNames[emp.CompanyID]; ok {
				companyID, companyName = emp.CompanyID, name
			}
			if name, ok := teamNames[emp.TeamID]; ok {
				teamID, teamName = emp.TeamID, name
			}
		}

		ci, ok := companyIdx[companyID]
		if !ok {
			ci = len(groups)
			companyIdx[companyID] = ci
			groups = append(groups, CompanyGroup[R]{CompanyID: companyID, Name: companyName})
		}

		ti := -1
		for i := range groups[ci].Teams {
			if groups[ci].Teams[i].TeamID == teamID && groups[ci].Teams[i].Name == teamName {
				ti = i
				break
			}
		}
		if ti < 0 {
			groups[ci].Teams = append(groups[ci].Teams, TeamGroup[R]{TeamID: teamID, Name: teamName})
			ti = len(groups[ci].Teams) - 1
		}
		groups[ci].Teams[ti].Records = append(groups[ci].Teams[ti].Records, r)
	}

	return groups
}
