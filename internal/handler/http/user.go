package http

import (
	"log/slog"
	"net/http"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/middleware"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

func (h *userHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		slog.Error("ListUsers service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// UpdateRole handles PUT /users/{id}/role
func (h *userHandlerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.CurrentUserID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req user.UpdateUserRoleRequest
	if !decodeJSON(w, r, &req, "UpdateRole") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.userService.UpdateRole(r.Context(), actorID, req)
	if err != nil {
		slog.Error("UpdateRole service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User role updated", "user_id", req.ID, "role", req.Role, "actor_id", actorID)
	response.SuccessWithMessage(w, "Role updated successfully", result)
}
