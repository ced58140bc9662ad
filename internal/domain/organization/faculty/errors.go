package faculty

import "errors"

var (
	ErrFacultyNotFound    = errors.New("faculty not found")
	ErrUniversityNotFound = errors.New("referenced university does not exist")
	ErrFacultyInUse       = errors.New("faculty still has departments")
)
