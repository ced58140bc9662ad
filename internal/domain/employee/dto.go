package employee

import (
	"strings"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	DepartmentID   *string `json:"department_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	JobID          *string `json:"job_id"`
	JobTitle       *string `json:"job_title,omitempty"`
	HireDate       string  `json:"hire_date"`
	Status         Status  `json:"status"`
	Gender         *Gender `json:"gender"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Email:          e.Email,
		Phone:          e.Phone,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		JobID:          e.JobID,
		JobTitle:       e.JobTitle,
		HireDate:       shared.FormatDate(e.HireDate),
		Status:         e.Status,
		Gender:         e.Gender,
		CreatedAt:      shared.FormatTimestamp(e.CreatedAt),
		UpdatedAt:      shared.FormatTimestamp(e.UpdatedAt),
	}
}

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name" validate:"notblank,max=100"`
	LastName     string  `json:"last_name" validate:"notblank,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	DepartmentID *string `json:"department_id,omitempty"`
	JobID        *string `json:"job_id,omitempty"`
	HireDate     string  `json:"hire_date" validate:"required,date"`
	Status       string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive on-leave"`
	Gender       *string `json:"gender,omitempty"`
}

func (r *CreateEmployeeRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Gender = lowerTrimmed(r.Gender)
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)
	validateGender(&errs, r.Gender)
	return errs.OrNil()
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	FirstName    *string `json:"first_name,omitempty" validate:"omitnil,notblank,max=100"`
	LastName     *string `json:"last_name,omitempty" validate:"omitnil,notblank,max=100"`
	Email        *string `json:"email,omitempty" validate:"omitnil,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	DepartmentID *string `json:"department_id,omitempty"`
	JobID        *string `json:"job_id,omitempty"`
	HireDate     *string `json:"hire_date,omitempty" validate:"omitnil,date"`
	Status       *string `json:"status,omitempty" validate:"omitnil,oneof=active inactive on-leave"`
	Gender       *string `json:"gender,omitempty"`
}

func (r *UpdateEmployeeRequest) Normalize() {
	if r.FirstName != nil {
		v := strings.TrimSpace(*r.FirstName)
		r.FirstName = &v
	}
	if r.LastName != nil {
		v := strings.TrimSpace(*r.LastName)
		r.LastName = &v
	}
	r.Email = lowerTrimmed(r.Email)
	r.Gender = lowerTrimmed(r.Gender)
}

func (r *UpdateEmployeeRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	validateGender(&errs, r.Gender)
	return errs.OrNil()
}

func lowerTrimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	return &v
}

// An empty gender clears the column.
func validateGender(errs *validator.ValidationErrors, gender *string) {
	if gender == nil || *gender == "" {
		return
	}
	if Gender(*gender) != GenderMale && Gender(*gender) != GenderFemale {
		errs.Add("gender", "gender must be one of: male, female")
	}
}

type EmployeeFilter struct {
	shared.ListParams
	DepartmentID *string
	JobID        *string
	Status       *string
}
