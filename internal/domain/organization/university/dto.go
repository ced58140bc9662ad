package university

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

// UniversityResponse represents the response structure for a university.
type UniversityResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Location     *string `json:"location"`
	ContactEmail *string `json:"contact_email"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToResponse(u University) UniversityResponse {
	return UniversityResponse{
		ID:           u.ID,
		Name:         u.Name,
		Location:     u.Location,
		ContactEmail: u.ContactEmail,
		CreatedAt:    shared.FormatTimestamp(u.CreatedAt),
		UpdatedAt:    shared.FormatTimestamp(u.UpdatedAt),
	}
}

type CreateUniversityRequest struct {
	Name         string  `json:"name" validate:"notblank,max=200"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitnil,emailorempty"`
}

func (r *CreateUniversityRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

// UpdateUniversityRequest is a partial update; an empty string clears an optional field.
type UpdateUniversityRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty" validate:"omitnil,notblank,max=200"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitnil,emailorempty"`
}

func (r *UpdateUniversityRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	return errs.OrNil()
}

type UniversityFilter struct {
	shared.ListParams
}
