package training

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

type ProgramResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      Status  `json:"status"`
	Capacity    int     `json:"capacity"`
	Enrolled    int     `json:"enrolled"`
	SeatsLeft   int     `json:"seats_left"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToResponse(p Program) ProgramResponse {
	return ProgramResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   shared.FormatDate(p.StartDate),
		EndDate:     shared.FormatDate(p.EndDate),
		Status:      p.Status,
		Capacity:    p.Capacity,
		Enrolled:    p.Enrolled,
		SeatsLeft:   p.SeatsLeft(),
		CreatedAt:   shared.FormatTimestamp(p.CreatedAt),
		UpdatedAt:   shared.FormatTimestamp(p.UpdatedAt),
	}
}

type CreateProgramRequest struct {
	Name        string  `json:"name" validate:"notblank,max=200"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date" validate:"required,date"`
	EndDate     string  `json:"end_date" validate:"required,date"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=upcoming ongoing completed"`
	Capacity    int     `json:"capacity" validate:"gt=0"`
	Enrolled    int     `json:"enrolled" validate:"gte=0"`
}

func (r *CreateProgramRequest) Validate() error {
	errs := validator.Struct(r)
	validator.DateNotBefore(&errs, "end_date", r.StartDate, r.EndDate)
	ValidateEnrollment(&errs, r.Capacity, r.Enrolled)
	return errs.OrNil()
}

type UpdateProgramRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty" validate:"omitnil,notblank,max=200"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"start_date,omitempty" validate:"omitnil,date"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitnil,date"`
	Status      *string `json:"status,omitempty" validate:"omitnil,oneof=upcoming ongoing completed"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitnil,gt=0"`
	Enrolled    *int    `json:"enrolled,omitempty" validate:"omitnil,gte=0"`
}

func (r *UpdateProgramRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	return errs.OrNil()
}

// ValidateEnrollment enforces enrolled <= capacity.
func ValidateEnrollment(errs *validator.ValidationErrors, capacity, enrolled int) {
	if capacity > 0 && enrolled > capacity {
		errs.Add("enrolled", "enrolled must not exceed capacity")
	}
}

type ProgramFilter struct {
	shared.ListParams
	Status *string
}
