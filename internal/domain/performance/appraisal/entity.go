package appraisal

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

type Appraisal struct {
	ID         string
	EmployeeID string
	CycleID    string
	ReviewerID *string
	Score      *float64
	Comments   *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeName *string
	CycleName    *string
	ReviewerName *string
}

func (a Appraisal) IsPending() bool {
	return a.Status == StatusPending
}
