package department

import "time"

type Department struct {
	ID           string
	Name         string
	FacultyID    *string
	ManagerID    *string
	Location     *string
	ContactEmail *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	FacultyName *string
	ManagerName *string
}
