package contract

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ContractResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	Type         Type            `json:"type"`
	StartDate    string          `json:"start_date"`
	EndDate      *string         `json:"end_date"`
	Salary       decimal.Decimal `json:"salary"`
	Status       Status          `json:"status"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

func ToResponse(c Contract) ContractResponse {
	return ContractResponse{
		ID:           c.ID,
		EmployeeID:   c.EmployeeID,
		EmployeeName: c.EmployeeName,
		Type:         c.Type,
		StartDate:    shared.FormatDate(c.StartDate),
		EndDate:      shared.FormatDatePtr(c.EndDate),
		Salary:       c.Salary,
		Status:       c.Status,
		CreatedAt:    shared.FormatTimestamp(c.CreatedAt),
		UpdatedAt:    shared.FormatTimestamp(c.UpdatedAt),
	}
}

type CreateContractRequest struct {
	EmployeeID string           `json:"employee_id" validate:"notblank"`
	Type       string           `json:"type,omitempty" validate:"omitempty,oneof=permanent temporary contract internship"`
	StartDate  string           `json:"start_date" validate:"required,date"`
	EndDate    *string          `json:"end_date,omitempty" validate:"omitnil,dateorempty"`
	Salary     *decimal.Decimal `json:"salary" validate:"required"`
	Status     string           `json:"status,omitempty" validate:"omitempty,oneof=active expired terminated"`
}

func (r *CreateContractRequest) Validate() error {
	errs := validator.Struct(r)
	if r.EndDate != nil {
		validator.DateNotBefore(&errs, "end_date", r.StartDate, *r.EndDate)
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs.Add("salary", "salary must not be negative")
	}
	return errs.OrNil()
}

type UpdateContractRequest struct {
	ID         string           `json:"-"`
	EmployeeID *string          `json:"employee_id,omitempty" validate:"omitnil,notblank"`
	Type       *string          `json:"type,omitempty" validate:"omitnil,oneof=permanent temporary contract internship"`
	StartDate  *string          `json:"start_date,omitempty" validate:"omitnil,date"`
	EndDate    *string          `json:"end_date,omitempty" validate:"omitnil,dateorempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	Status     *string          `json:"status,omitempty" validate:"omitnil,oneof=active expired terminated"`
}

func (r *UpdateContractRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs.Add("salary", "salary must not be negative")
	}
	return errs.OrNil()
}

type ContractFilter struct {
	shared.ListParams
	EmployeeID *string
	Type       *string
	Status     *string
}
