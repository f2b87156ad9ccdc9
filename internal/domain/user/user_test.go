package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"admin", "rh", "manager", "employee"} {
		role, err := ParseRole(raw)
		assert.NoError(t, err)
		assert.Equal(t, Role(raw), role)
	}

	_, err := ParseRole("superuser")
	assert.Error(t, err)

	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, PermissionEmployeeManage))
	assert.True(t, HasPermission(RoleRH, PermissionLeaveApprove))
	assert.True(t, HasPermission(RoleManager, PermissionLeaveApprove))
	assert.False(t, HasPermission(RoleEmployee, PermissionLeaveApprove))
	assert.False(t, HasPermission(RoleEmployee, PermissionClaimProcess))
	assert.False(t, HasPermission(Role("superuser"), PermissionLeaveApprove))
}

func TestCanSee(t *testing.T) {
	const owner, companyID, teamID = "emp-1", "co-1", "team-1"

	tests := []struct {
		name string
		sess Session
		want bool
	}{
		{"admin sees all", Session{Role: RoleAdmin}, true},
		{"rh same company", Session{Role: RoleRH, CompanyID: "co-1"}, true},
		{"rh other company", Session{Role: RoleRH, CompanyID: "co-2"}, false},
		{"rh without company", Session{Role: RoleRH}, false},
		{"manager same team", Session{Role: RoleManager, TeamID: "team-1"}, true},
		{"manager other team", Session{Role: RoleManager, TeamID: "team-2"}, false},
		{"employee own record", Session{Role: RoleEmployee, EmployeeID: "emp-1"}, true},
		{"employee other record", Session{Role: RoleEmployee, EmployeeID: "emp-2"}, false},
		{"unknown role", Session{Role: Role("superuser")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sess.CanSee(owner, companyID, teamID))
		})
	}
}
