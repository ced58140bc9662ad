package university

import "time"

type University struct {
	ID           string
	Name         string
	Location     *string
	ContactEmail *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
