package cycle

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

type CycleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      Status  `json:"status"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToResponse(c Cycle) CycleResponse {
	return CycleResponse{
		ID:          c.ID,
		Name:        c.Name,
		StartDate:   shared.FormatDate(c.StartDate),
		EndDate:     shared.FormatDate(c.EndDate),
		Status:      c.Status,
		Description: c.Description,
		CreatedAt:   shared.FormatTimestamp(c.CreatedAt),
		UpdatedAt:   shared.FormatTimestamp(c.UpdatedAt),
	}
}

type CreateCycleRequest struct {
	Name        string  `json:"name" validate:"notblank,max=200"`
	StartDate   string  `json:"start_date" validate:"required,date"`
	EndDate     string  `json:"end_date" validate:"required,date"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=draft active completed"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateCycleRequest) Validate() error {
	errs := validator.Struct(r)
	validator.DateNotBefore(&errs, "end_date", r.StartDate, r.EndDate)
	return errs.OrNil()
}

type UpdateCycleRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty" validate:"omitnil,notblank,max=200"`
	StartDate   *string `json:"start_date,omitempty" validate:"omitnil,date"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitnil,date"`
	Status      *string `json:"status,omitempty" validate:"omitnil,oneof=draft active completed"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateCycleRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	return errs.OrNil()
}

type CycleFilter struct {
	shared.ListParams
	Status *string
}
