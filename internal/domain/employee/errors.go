package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("an employee with this email already exists")
	ErrInvalidReference = errors.New("referenced department or job does not exist")
	ErrEmployeeInUse    = errors.New("employee is still referenced by other records")
)
