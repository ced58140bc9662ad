package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailAlreadyExists  = errors.New("an account with this email already exists")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrUserNotFound        = errors.New("user not found")
	ErrOAuthDisabled       = errors.New("google sign-in is not configured")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
)
