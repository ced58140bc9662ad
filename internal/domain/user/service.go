package user

import "context"

type UserService interface {
	ListUsers(ctx context.Context) ([]UserResponse, error)
	// UpdateRole assigns a role; actorID is the administrator performing it.
	UpdateRole(ctx context.Context, actorID string, req UpdateUserRoleRequest) (UserResponse, error)
}
