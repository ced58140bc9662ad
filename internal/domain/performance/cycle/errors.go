package cycle

import "errors"

var (
	ErrCycleNotFound = errors.New("performance cycle not found")
)
