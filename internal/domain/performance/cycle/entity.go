package cycle

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

type Cycle struct {
	ID          string
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Status      Status
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Cycle) IsActive() bool {
	return c.Status == StatusActive
}
