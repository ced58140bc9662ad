package auth

import (
	"strings"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

type SignUpRequest struct {
	FirstName       string `json:"first_name" validate:"notblank,max=100"`
	LastName        string `json:"last_name" validate:"notblank,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (r *SignUpRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *SignUpRequest) Validate() error {
	errs := validator.Struct(r)

	if r.ConfirmPassword != "" && r.ConfirmPassword != r.Password {
		errs.Add("confirm_password", "passwords don't match")
	}

	return errs.OrNil()
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *SignInRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *SignInRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.RefreshToken) {
		errs.Add("refresh_token", "refresh_token is required")
	}
	return errs.OrNil()
}

// SessionTrackingRequest carries client metadata stored with a refresh token.
type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}

// SessionResponse is the current session as seen by the console.
type SessionResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      user.Role `json:"role"`
	CanManage bool      `json:"can_manage"`
}
