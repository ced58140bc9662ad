package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("job assignment not found")
	ErrInvalidReference   = errors.New("referenced employee, job or department does not exist")
)
