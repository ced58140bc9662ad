package job

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type JobResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Level       Level            `json:"level"`
	MinSalary   *decimal.Decimal `json:"min_salary"`
	MaxSalary   *decimal.Decimal `json:"max_salary"`
	Status      Status           `json:"status"`
	Category    *string          `json:"category"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

func ToResponse(j Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Level:       j.Level,
		MinSalary:   j.MinSalary,
		MaxSalary:   j.MaxSalary,
		Status:      j.Status,
		Category:    j.Category,
		CreatedAt:   shared.FormatTimestamp(j.CreatedAt),
		UpdatedAt:   shared.FormatTimestamp(j.UpdatedAt),
	}
}

type CreateJobRequest struct {
	Title       string           `json:"title" validate:"notblank,max=200"`
	Description *string          `json:"description,omitempty"`
	Level       string           `json:"level,omitempty" validate:"omitempty,oneof=entry mid senior lead manager director"`
	MinSalary   *decimal.Decimal `json:"min_salary,omitempty"`
	MaxSalary   *decimal.Decimal `json:"max_salary,omitempty"`
	Status      string           `json:"status,omitempty" validate:"omitempty,oneof=open closed on-hold"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=100"`
}

func (r *CreateJobRequest) Validate() error {
	errs := validator.Struct(r)
	ValidateSalaryRange(&errs, r.MinSalary, r.MaxSalary)
	return errs.OrNil()
}

type UpdateJobRequest struct {
	ID          string           `json:"-"`
	Title       *string          `json:"title,omitempty" validate:"omitnil,notblank,max=200"`
	Description *string          `json:"description,omitempty"`
	Level       *string          `json:"level,omitempty" validate:"omitnil,oneof=entry mid senior lead manager director"`
	MinSalary   *decimal.Decimal `json:"min_salary,omitempty"`
	MaxSalary   *decimal.Decimal `json:"max_salary,omitempty"`
	Status      *string          `json:"status,omitempty" validate:"omitnil,oneof=open closed on-hold"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdateJobRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	ValidateSalaryRange(&errs, r.MinSalary, r.MaxSalary)
	return errs.OrNil()
}

// ValidateSalaryRange rejects negative salaries and min above max when both are set.
func ValidateSalaryRange(errs *validator.ValidationErrors, min, max *decimal.Decimal) {
	if min != nil && min.IsNegative() {
		errs.Add("min_salary", "min_salary must not be negative")
	}
	if max != nil && max.IsNegative() {
		errs.Add("max_salary", "max_salary must not be negative")
	}
	if min != nil && max != nil && min.GreaterThan(*max) {
		errs.Add("max_salary", "max_salary must be greater than or equal to min_salary")
	}
}

type JobFilter struct {
	shared.ListParams
	Level  *string
	Status *string
}
