package faculty

import "time"

type Faculty struct {
	ID           string
	Name         string
	UniversityID *string
	Location     *string
	ContactEmail *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	UniversityName *string
}
