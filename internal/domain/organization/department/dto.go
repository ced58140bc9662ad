package department

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

type DepartmentResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	FacultyID    *string `json:"faculty_id"`
	FacultyName  *string `json:"faculty_name,omitempty"`
	ManagerID    *string `json:"manager_id"`
	ManagerName  *string `json:"manager_name,omitempty"`
	Location     *string `json:"location"`
	ContactEmail *string `json:"contact_email"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           d.ID,
		Name:         d.Name,
		FacultyID:    d.FacultyID,
		FacultyName:  d.FacultyName,
		ManagerID:    d.ManagerID,
		ManagerName:  d.ManagerName,
		Location:     d.Location,
		ContactEmail: d.ContactEmail,
		CreatedAt:    shared.FormatTimestamp(d.CreatedAt),
		UpdatedAt:    shared.FormatTimestamp(d.UpdatedAt),
	}
}

type CreateDepartmentRequest struct {
	Name         string  `json:"name" validate:"notblank,max=200"`
	FacultyID    *string `json:"faculty_id,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitnil,emailorempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type UpdateDepartmentRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty" validate:"omitnil,notblank,max=200"`
	FacultyID    *string `json:"faculty_id,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitnil,emailorempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	return errs.OrNil()
}

type DepartmentFilter struct {
	shared.ListParams
	FacultyID *string
}
