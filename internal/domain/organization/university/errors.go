package university

import "errors"

var (
	ErrUniversityNotFound = errors.New("university not found")
	ErrUniversityInUse    = errors.New("university still has faculties")
)
