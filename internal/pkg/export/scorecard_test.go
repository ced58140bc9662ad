package export

import (
	"bytes"
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/kpi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleCards() []kpi.Scorecard {
	return []kpi.Scorecard{
		{
			EmployeeID:    "emp-1",
			EmployeeName:  "Mona Hassan",
			TotalWeight:   55,
			WeightedScore: 4.5909,
			Display:       "4.59/5",
			Rows: []kpi.ScorecardRow{
				{ScoreID: "s1", CycleID: "c1", KPIName: "Research output", Target: 100, Achieved: 95, Weight: 30, Percentage: 95, Progress: 95, RowScore: 4.75, Valid: true},
				{ScoreID: "s2", CycleID: "c1", KPIName: "Teaching quality", Target: 100, Achieved: 88, Weight: 25, Percentage: 88, Progress: 88, RowScore: 4.4, Valid: true},
			},
		},
		{EmployeeID: "emp-2", EmployeeName: "Omar Nabil", Display: "0.00/5"},
	}
}

func TestScorecardsXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ScorecardsXLSX(&buf, sampleCards()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, detailSheet}, f.GetSheetList())

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, "Mona Hassan", summary[1][1])
	assert.Equal(t, "4.59/5", summary[1][5])
	assert.Equal(t, "0.00/5", summary[2][5])

	detail, err := f.GetRows(detailSheet)
	require.NoError(t, err)
	require.Len(t, detail, 3)
	assert.Equal(t, "Teaching quality", detail[2][2])
}

func TestScorecardPDF(t *testing.T) {
	var buf bytes.Buffer
	card := sampleCards()[0]
	card.Rows = append(card.Rows, kpi.ScorecardRow{KPIName: "Legacy", Weight: 10})

	require.NoError(t, ScorecardPDF(&buf, card))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.59, round2(4.5909))
	assert.Equal(t, 4.4, round2(4.4))
}
