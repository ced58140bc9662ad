package assignment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status mirrors the employee status set.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on-leave"
)

type Assignment struct {
	ID           string
	EmployeeID   string
	JobID        string
	DepartmentID *string
	StartDate    time.Time
	EndDate      *time.Time
	Salary       *decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeName   *string
	JobTitle       *string
	DepartmentName *string
}
