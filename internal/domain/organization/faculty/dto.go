package faculty

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

type FacultyResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	UniversityID   *string `json:"university_id"`
	UniversityName *string `json:"university_name,omitempty"`
	Location       *string `json:"location"`
	ContactEmail   *string `json:"contact_email"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func ToResponse(f Faculty) FacultyResponse {
	return FacultyResponse{
		ID:             f.ID,
		Name:           f.Name,
		UniversityID:   f.UniversityID,
		UniversityName: f.UniversityName,
		Location:       f.Location,
		ContactEmail:   f.ContactEmail,
		CreatedAt:      shared.FormatTimestamp(f.CreatedAt),
		UpdatedAt:      shared.FormatTimestamp(f.UpdatedAt),
	}
}

type CreateFacultyRequest struct {
	Name         string  `json:"name" validate:"notblank,max=200"`
	UniversityID *string `json:"university_id,omitempty"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitnil,emailorempty"`
}

func (r *CreateFacultyRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type UpdateFacultyRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty" validate:"omitnil,notblank,max=200"`
	UniversityID *string `json:"university_id,omitempty"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitnil,emailorempty"`
}

func (r *UpdateFacultyRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	return errs.OrNil()
}

type FacultyFilter struct {
	shared.ListParams
	UniversityID *string
}
