package performance

import (
	"fmt"
	"sort"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/kpi"
)

const maxScore = 5.0

// BuildScorecards groups KPI rows by employee and computes each employee's
// weighted score on a 0-5 scale. Employees without rows are not returned.
// The result is ordered by employee id so it does not depend on row order.
func BuildScorecards(rows []kpi.Score) []kpi.Scorecard {
	groups := make(map[string][]kpi.Score)
	names := make(map[string]string)
	for _, r := range rows {
		groups[r.EmployeeID] = append(groups[r.EmployeeID], r)
		if r.EmployeeName != nil && *r.EmployeeName != "" {
			names[r.EmployeeID] = *r.EmployeeName
		}
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cards := make([]kpi.Scorecard, 0, len(ids))
	for _, id := range ids {
		cards = append(cards, buildScorecard(id, names[id], groups[id]))
	}
	return cards
}

func buildScorecard(employeeID, employeeName string, rows []kpi.Score) kpi.Scorecard {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.CycleID != b.CycleID {
			return a.CycleID < b.CycleID
		}
		if a.KPIName != b.KPIName {
			return a.KPIName < b.KPIName
		}
		return a.ID < b.ID
	})

	if employeeName == "" {
		employeeName = employeeID
	}
	card := kpi.Scorecard{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Rows:         make([]kpi.ScorecardRow, 0, len(rows)),
	}

	var weighted float64
	for _, r := range rows {
		row := scoreRow(r)
		card.Rows = append(card.Rows, row)
		if !row.Valid {
			continue
		}
		card.TotalWeight += row.Weight
		weighted += row.RowScore * row.Weight
	}

	if card.TotalWeight > 0 {
		card.WeightedScore = weighted / card.TotalWeight
	}
	card.Display = fmt.Sprintf("%.2f/%d", card.WeightedScore, int(maxScore))
	return card
}

func scoreRow(s kpi.Score) kpi.ScorecardRow {
	row := kpi.ScorecardRow{
		ScoreID:  s.ID,
		CycleID:  s.CycleID,
		KPIName:  s.KPIName,
		Target:   s.Target,
		Achieved: s.Achieved,
		Weight:   s.Weight,
	}
	// target <= 0 is rejected on write; rows that predate the check score zero
	if s.Target <= 0 {
		return row
	}
	row.Valid = true
	row.Percentage = s.Achieved / s.Target * 100
	row.Progress = clamp(row.Percentage, 0, 100)
	row.RowScore = row.Percentage / 100 * maxScore
	return row
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
