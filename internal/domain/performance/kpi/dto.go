package kpi

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

type ScoreResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	CycleID      string  `json:"cycle_id"`
	CycleName    *string `json:"cycle_name,omitempty"`
	KPIName      string  `json:"kpi_name"`
	Target       float64 `json:"target"`
	Achieved     float64 `json:"achieved"`
	Weight       float64 `json:"weight"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToResponse(s Score) ScoreResponse {
	return ScoreResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		CycleID:      s.CycleID,
		CycleName:    s.CycleName,
		KPIName:      s.KPIName,
		Target:       s.Target,
		Achieved:     s.Achieved,
		Weight:       s.Weight,
		CreatedAt:    shared.FormatTimestamp(s.CreatedAt),
		UpdatedAt:    shared.FormatTimestamp(s.UpdatedAt),
	}
}

type CreateScoreRequest struct {
	EmployeeID string   `json:"employee_id" validate:"notblank"`
	CycleID    string   `json:"cycle_id" validate:"notblank"`
	KPIName    string   `json:"kpi_name" validate:"notblank,max=200"`
	Target     *float64 `json:"target" validate:"required,gt=0"`
	Achieved   *float64 `json:"achieved" validate:"required,gte=0"`
	Weight     *float64 `json:"weight" validate:"required,gte=0,lte=100"`
}

func (r *CreateScoreRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type UpdateScoreRequest struct {
	ID         string   `json:"-"`
	EmployeeID *string  `json:"employee_id,omitempty" validate:"omitnil,notblank"`
	CycleID    *string  `json:"cycle_id,omitempty" validate:"omitnil,notblank"`
	KPIName    *string  `json:"kpi_name,omitempty" validate:"omitnil,notblank,max=200"`
	Target     *float64 `json:"target,omitempty" validate:"omitnil,gt=0"`
	Achieved   *float64 `json:"achieved,omitempty" validate:"omitnil,gte=0"`
	Weight     *float64 `json:"weight,omitempty" validate:"omitnil,gte=0,lte=100"`
}

func (r *UpdateScoreRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	return errs.OrNil()
}

type ScoreFilter struct {
	shared.ListParams
	EmployeeID *string
	CycleID    *string
}

type ScorecardRowResponse struct {
	ScoreID    string  `json:"score_id"`
	CycleID    string  `json:"cycle_id"`
	KPIName    string  `json:"kpi_name"`
	Target     float64 `json:"target"`
	Achieved   float64 `json:"achieved"`
	Weight     float64 `json:"weight"`
	Percentage float64 `json:"percentage"`
	Progress   float64 `json:"progress"`
	RowScore   float64 `json:"row_score"`
	Valid      bool    `json:"valid"`
}

type ScorecardResponse struct {
	EmployeeID    string                 `json:"employee_id"`
	EmployeeName  string                 `json:"employee_name"`
	WeightedScore float64                `json:"weighted_score"`
	TotalWeight   float64                `json:"total_weight"`
	Display       string                 `json:"display"`
	Rows          []ScorecardRowResponse `json:"rows"`
}

func ToScorecardResponse(c Scorecard) ScorecardResponse {
	rows := make([]ScorecardRowResponse, 0, len(c.Rows))
	for _, r := range c.Rows {
		rows = append(rows, ScorecardRowResponse{
			ScoreID:    r.ScoreID,
			CycleID:    r.CycleID,
			KPIName:    r.KPIName,
			Target:     r.Target,
			Achieved:   r.Achieved,
			Weight:     r.Weight,
			Percentage: r.Percentage,
			Progress:   r.Progress,
			RowScore:   r.RowScore,
			Valid:      r.Valid,
		})
	}
	return ScorecardResponse{
		EmployeeID:    c.EmployeeID,
		EmployeeName:  c.EmployeeName,
		WeightedScore: c.WeightedScore,
		TotalWeight:   c.TotalWeight,
		Display:       c.Display,
		Rows:          rows,
	}
}

// ScorecardFilter narrows the scorecard computation to one cycle or employee.
type ScorecardFilter struct {
	CycleID    *string
	EmployeeID *string
}
