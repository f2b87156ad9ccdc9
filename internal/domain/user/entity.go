package user

import "fmt"

// Role is a closed enumeration. Persisted role strings go through
// ParseRole, so an unrecognized value surfaces as an error instead of
// silently behaving like a permissionless role.
type Role string

const (
	RoleAdmin    Role = "admin"    // full access across companies
	RoleRH       Role = "rh"       // HR staff, scoped to their own company
	RoleManager  Role = "manager"  // scoped to their own team
	RoleEmployee Role = "employee" // own records only
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleRH, RoleManager, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Session is the read-only view of the current authenticated user, provided
// by the identity collaborator.
type Session struct {
	ID         string
	Role       Role
	EmployeeID string
	CompanyID  string
	TeamID     string
}

// Identity exposes the current session. The core never writes through it.
type Identity interface {
	Current() (Session, error)
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s Session) IsRH() bool {
	return s.Role == RoleRH
}

func (s Session) IsManager() bool {
	return s.Role == RoleManager
}

func (s Session) IsEmployee() bool {
	return s.Role == RoleEmployee
}
