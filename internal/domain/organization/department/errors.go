package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrInvalidReference   = errors.New("referenced faculty or manager does not exist")
	ErrDepartmentInUse    = errors.New("department is still referenced by employees or assignments")
)
