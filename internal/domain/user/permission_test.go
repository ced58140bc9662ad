package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionUserManage, true},
		{RoleAdmin, PermissionRecordsManage, true},
		{RoleHRManager, PermissionRecordsManage, true},
		{RoleHRManager, PermissionUserManage, false},
		{RoleEmployee, PermissionRecordsView, true},
		{RoleEmployee, PermissionRecordsManage, false},
		{Role("owner"), PermissionRecordsView, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HasPermission(c.role, c.permission), "%s/%s", c.role, c.permission)
	}
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleHRManager.IsValid())
	assert.False(t, Role("Admin").IsValid())
}

func TestUpdateUserRoleRequest_Validate(t *testing.T) {
	req := UpdateUserRoleRequest{ID: "u1", Role: "superuser"}
	assert.Error(t, req.Validate())

	req.Role = "hr_manager"
	assert.NoError(t, req.Validate())
}
