package kpi

import "time"

// Score is one KPI measurement of an employee within a cycle.
type Score struct {
	ID         string
	EmployeeID string
	CycleID    string
	KPIName    string
	Target     float64
	Achieved   float64
	Weight     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeName *string
	CycleName    *string
}

// ScorecardRow is the per-KPI breakdown of a scorecard.
type ScorecardRow struct {
	ScoreID    string
	CycleID    string
	KPIName    string
	Target     float64
	Achieved   float64
	Weight     float64
	Percentage float64 // achieved / target * 100, unclamped
	Progress   float64 // percentage clamped to [0, 100], display only
	RowScore   float64 // percentage on a 0-5 scale, unclamped
	Valid      bool    // false when target <= 0; such rows never enter the weighted mean
}

// Scorecard is the weighted KPI result of one employee.
type Scorecard struct {
	EmployeeID    string
	EmployeeName  string
	Rows          []ScorecardRow
	TotalWeight   float64
	WeightedScore float64
	Display       string
}
