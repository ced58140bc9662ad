package user

import (
	"context"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/sse"
)

const tableUsers = "users"

type userServiceImpl struct {
	userRepo user.UserRepository
	events   sse.Publisher
}

func NewUserService(userRepo user.UserRepository, events sse.Publisher) user.UserService {
	return &userServiceImpl{userRepo: userRepo, events: events}
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// UpdateRole assigns a new role. An administrator cannot change their own
// role, so the console always keeps at least the acting admin.
func (s *userServiceImpl) UpdateRole(ctx context.Context, actorID string, req user.UpdateUserRoleRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionUserManage) {
		return user.UserResponse{}, user.ErrInsufficientPermissions
	}
	if actorID == req.ID {
		return user.UserResponse{}, user.ErrCannotChangeOwnRole
	}

	role := user.Role(req.Role)
	if !role.IsValid() {
		return user.UserResponse{}, user.ErrInvalidRole
	}

	if err := s.userRepo.UpdateRole(ctx, req.ID, role); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	s.events.Publish(sse.Event{Table: tableUsers, Action: sse.ActionUpdated, ID: req.ID})
	return user.ToResponse(updated), nil
}
