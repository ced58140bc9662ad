package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrInvalidRole             = errors.New("invalid role")
	ErrCannotChangeOwnRole     = errors.New("cannot change your own role")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
