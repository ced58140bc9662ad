package kpi

import "errors"

var (
	ErrScoreNotFound     = errors.New("kpi score not found")
	ErrInvalidReference  = errors.New("referenced employee or cycle does not exist")
	ErrScorecardNotFound = errors.New("no kpi scores recorded for this employee")
)
