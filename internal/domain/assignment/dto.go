package assignment

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AssignmentResponse struct {
	ID             string           `json:"id"`
	EmployeeID     string           `json:"employee_id"`
	EmployeeName   *string          `json:"employee_name,omitempty"`
	JobID          string           `json:"job_id"`
	JobTitle       *string          `json:"job_title,omitempty"`
	DepartmentID   *string          `json:"department_id"`
	DepartmentName *string          `json:"department_name,omitempty"`
	StartDate      string           `json:"start_date"`
	EndDate        *string          `json:"end_date"`
	Salary         *decimal.Decimal `json:"salary"`
	Status         Status           `json:"status"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

func ToResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		JobID:          a.JobID,
		JobTitle:       a.JobTitle,
		DepartmentID:   a.DepartmentID,
		DepartmentName: a.DepartmentName,
		StartDate:      shared.FormatDate(a.StartDate),
		EndDate:        shared.FormatDatePtr(a.EndDate),
		Salary:         a.Salary,
		Status:         a.Status,
		CreatedAt:      shared.FormatTimestamp(a.CreatedAt),
		UpdatedAt:      shared.FormatTimestamp(a.UpdatedAt),
	}
}

type CreateAssignmentRequest struct {
	EmployeeID   string           `json:"employee_id" validate:"notblank"`
	JobID        string           `json:"job_id" validate:"notblank"`
	DepartmentID *string          `json:"department_id,omitempty"`
	StartDate    string           `json:"start_date" validate:"required,date"`
	EndDate      *string          `json:"end_date,omitempty" validate:"omitnil,dateorempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	Status       string           `json:"status,omitempty" validate:"omitempty,oneof=active inactive on-leave"`
}

func (r *CreateAssignmentRequest) Validate() error {
	errs := validator.Struct(r)
	if r.EndDate != nil {
		validator.DateNotBefore(&errs, "end_date", r.StartDate, *r.EndDate)
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs.Add("salary", "salary must not be negative")
	}
	return errs.OrNil()
}

type UpdateAssignmentRequest struct {
	ID           string           `json:"-"`
	EmployeeID   *string          `json:"employee_id,omitempty" validate:"omitnil,notblank"`
	JobID        *string          `json:"job_id,omitempty" validate:"omitnil,notblank"`
	DepartmentID *string          `json:"department_id,omitempty"`
	StartDate    *string          `json:"start_date,omitempty" validate:"omitnil,date"`
	EndDate      *string          `json:"end_date,omitempty" validate:"omitnil,dateorempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	Status       *string          `json:"status,omitempty" validate:"omitnil,oneof=active inactive on-leave"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs.Add("salary", "salary must not be negative")
	}
	return errs.OrNil()
}

type AssignmentFilter struct {
	shared.ListParams
	EmployeeID   *string
	JobID        *string
	DepartmentID *string
	Status       *string
}
