package user

// CanSee reports whether the session may see a record owned by the employee
// with the given org affiliation. Every list and detail surface applies this
// before grouping or display: admin sees everything, rh their company,
// manager their team, employee only their own records.
func (s Session) CanSee(ownerEmployeeID, companyID, teamID string) bool {
	switch s.Role {
	case RoleAdmin:
		return true
	case RoleRH:
		return s.CompanyID != "" && s.CompanyID == companyID
	case RoleManager:
		return s.TeamID != "" && s.TeamID == teamID
	case RoleEmployee:
		return s.EmployeeID != "" && s.EmployeeID == ownerEmployeeID
	}
	return false
}

// CanActOn reports whether the session may approve, decline or process a
// request owned by the employee with the given org affiliation. Same scoping
// as CanSee; the self-approval guard is separate and enforced by the
// approval service.
func (s Session) CanActOn(ownerEmployeeID, companyID, teamID string) bool {
	return s.CanSee(ownerEmployeeID, companyID, teamID)
}
