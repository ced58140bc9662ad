package appraisal

import "errors"

var (
	ErrAppraisalNotFound = errors.New("appraisal not found")
	ErrInvalidReference  = errors.New("referenced employee, cycle or reviewer does not exist")
)
