package training

import "errors"

var (
	ErrProgramNotFound = errors.New("training program not found")
)
