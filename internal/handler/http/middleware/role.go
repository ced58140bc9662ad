package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// CurrentRole returns the role claim of the verified access token.
func CurrentRole(ctx context.Context) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false
	}
	role, ok := claims["role"].(string)
	return user.Role(role), ok && role != ""
}

// RequirePermission gates a route on the caller's role. Roles only decide
// what the console may do, never what the computations return.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := CurrentRole(r.Context())
			if !ok {
				response.Forbidden(w, "Access token carries no role")
				return
			}
			if !user.HasPermission(role, permission) {
				slog.Debug("permission denied", "role", role, "permission", permission, "path", r.URL.Path)
				response.Forbidden(w, "Role "+string(role)+" lacks "+string(permission))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
