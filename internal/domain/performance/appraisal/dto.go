package appraisal

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

type AppraisalResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	CycleID      string   `json:"cycle_id"`
	CycleName    *string  `json:"cycle_name,omitempty"`
	ReviewerID   *string  `json:"reviewer_id"`
	ReviewerName *string  `json:"reviewer_name,omitempty"`
	Score        *float64 `json:"score"`
	Comments     *string  `json:"comments"`
	Status       Status   `json:"status"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func ToResponse(a Appraisal) AppraisalResponse {
	return AppraisalResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		CycleID:      a.CycleID,
		CycleName:    a.CycleName,
		ReviewerID:   a.ReviewerID,
		ReviewerName: a.ReviewerName,
		Score:        a.Score,
		Comments:     a.Comments,
		Status:       a.Status,
		CreatedAt:    shared.FormatTimestamp(a.CreatedAt),
		UpdatedAt:    shared.FormatTimestamp(a.UpdatedAt),
	}
}

type CreateAppraisalRequest struct {
	EmployeeID string   `json:"employee_id" validate:"notblank"`
	CycleID    string   `json:"cycle_id" validate:"notblank"`
	ReviewerID *string  `json:"reviewer_id,omitempty"`
	Score      *float64 `json:"score,omitempty" validate:"omitempty,gte=0,lte=5"`
	Comments   *string  `json:"comments,omitempty"`
	Status     string   `json:"status,omitempty" validate:"omitempty,oneof=pending in-progress completed"`
}

func (r *CreateAppraisalRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type UpdateAppraisalRequest struct {
	ID         string   `json:"-"`
	EmployeeID *string  `json:"employee_id,omitempty" validate:"omitnil,notblank"`
	CycleID    *string  `json:"cycle_id,omitempty" validate:"omitnil,notblank"`
	ReviewerID *string  `json:"reviewer_id,omitempty"`
	Score      *float64 `json:"score,omitempty" validate:"omitnil,gte=0,lte=5"`
	Comments   *string  `json:"comments,omitempty"`
	Status     *string  `json:"status,omitempty" validate:"omitnil,oneof=pending in-progress completed"`
}

func (r *UpdateAppraisalRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	return errs.OrNil()
}

type AppraisalFilter struct {
	shared.ListParams
	EmployeeID *string
	CycleID    *string
	Status     *string
}
