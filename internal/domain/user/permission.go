package user

type Permission string

const (
	// Self management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Leave management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Illness management
	PermissionIllnessViewOwn Permission = "illness.view_own"
	PermissionIllnessViewAll Permission = "illness.view_all"
	PermissionIllnessManage  Permission = "illness.manage"

	// Claim / invoice management
	PermissionClaimViewOwn Permission = "claim.view_own"
	PermissionClaimCreate  Permission = "claim.create"
	PermissionClaimViewAll Permission = "claim.view_all"
	PermissionClaimProcess Permission = "claim.process"

	// Employee management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Org structure
	PermissionCompanyView   Permission = "company.view"
	PermissionCompanyManage Permission = "company.manage"

	// Notifications
	PermissionNotificationBroadcast Permission = "notification.broadcast"
)

// RolePermissions maps each role to its permission set. Scoping (own records,
// team, company, everything) is applied by callers on top of these grants.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionIllnessViewOwn,
		PermissionIllnessViewAll,
		PermissionIllnessManage,
		PermissionClaimViewOwn,
		PermissionClaimCreate,
		PermissionClaimViewAll,
		PermissionClaimProcess,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionCompanyView,
		PermissionCompanyManage,
		PermissionNotificationBroadcast,
	},
	RoleRH: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionIllnessViewOwn,
		PermissionIllnessViewAll,
		PermissionIllnessManage,
		PermissionClaimViewOwn,
		PermissionClaimCreate,
		PermissionClaimViewAll,
		PermissionClaimProcess,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionCompanyView,
		PermissionNotificationBroadcast,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionIllnessViewOwn,
		PermissionIllnessViewAll,
		PermissionClaimViewOwn,
		PermissionClaimCreate,
		PermissionClaimViewAll,
		PermissionClaimProcess,
		PermissionEmployeeViewAll,
		PermissionCompanyView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionIllnessViewOwn,
		PermissionClaimViewOwn,
		PermissionClaimCreate,
	},
}

// HasPermission checks if a role holds a specific permission.
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

// Permissions returns the full permission set of a role.
func Permissions(role Role) []Permission {
	return RolePermissions[role]
}
