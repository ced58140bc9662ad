package job

import "errors"

var (
	ErrJobNotFound = errors.New("job not found")
	ErrJobInUse    = errors.New("job is still referenced by employees or assignments")
)
