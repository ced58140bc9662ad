package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypePermanent  Type = "permanent"
	TypeTemporary  Type = "temporary"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusExpired    Status = "expired"
	StatusTerminated Status = "terminated"
)

type Contract struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    *time.Time
	Salary     decimal.Decimal
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeName *string
}
