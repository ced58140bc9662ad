package job

import (
	"time"

	"github.com/shopspring/decimal"
)

type Level string

const (
	LevelEntry    Level = "entry"
	LevelMid      Level = "mid"
	LevelSenior   Level = "senior"
	LevelLead     Level = "lead"
	LevelManager  Level = "manager"
	LevelDirector Level = "director"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
	StatusOnHold Status = "on-hold"
)

type Job struct {
	ID          string
	Title       string
	Description *string
	Level       Level
	MinSalary   *decimal.Decimal
	MaxSalary   *decimal.Decimal
	Status      Status
	Category    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen is what the dashboard counts as an active job.
func (j Job) IsOpen() bool {
	return j.Status == StatusOpen
}
