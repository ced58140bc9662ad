package employee

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on-leave"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	DepartmentID *string
	JobID        *string
	HireDate     time.Time
	Status       Status
	Gender       *Gender
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	DepartmentName *string
	JobTitle       *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsActive is what the dashboard counts as an active employee.
func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
