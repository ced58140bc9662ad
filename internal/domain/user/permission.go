package user

type Permission string

const (
	// Read access to every HR table, scorecards and exports
	PermissionRecordsView Permission = "records.view"
	// Create, update and delete on every HR table
	PermissionRecordsManage Permission = "records.manage"

	PermissionDashboardView Permission = "dashboard.view"

	// Role assignment
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionRecordsView,
		PermissionRecordsManage,
		PermissionDashboardView,
		PermissionUserManage,
	},
	RoleHRManager: {
		PermissionRecordsView,
		PermissionRecordsManage,
		PermissionDashboardView,
	},
	RoleEmployee: {
		PermissionRecordsView,
		PermissionDashboardView,
	},
}

// HasPermission checks if a role has a specific permission
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
