package training

import "time"

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

type Program struct {
	ID          string
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	Status      Status
	Capacity    int
	Enrolled    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StatusOn derives the lifecycle status of a program from its dates.
func (p Program) StatusOn(day time.Time) Status {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case day.Before(p.StartDate):
		return StatusUpcoming
	case day.After(p.EndDate):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}

func (p Program) SeatsLeft() int {
	return p.Capacity - p.Enrolled
}
