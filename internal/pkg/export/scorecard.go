package export

import (
	"fmt"
	"io"
	"math"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/kpi"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"

	summarySheet = "Scorecards"
	detailSheet  = "KPIs"
)

// ScorecardsXLSX writes one summary row per employee and one detail row per KPI.
func ScorecardsXLSX(w io.Writer, cards []kpi.Scorecard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(detailSheet); err != nil {
		return fmt.Errorf("failed to create detail sheet: %w", err)
	}

	header := []interface{}{"Employee ID", "Employee", "KPIs", "Total Weight", "Weighted Score", "Score"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}
	detailHeader := []interface{}{"Employee", "Cycle ID", "KPI", "Target", "Achieved", "Weight", "Progress %", "Row Score"}
	if err := f.SetSheetRow(detailSheet, "A1", &detailHeader); err != nil {
		return err
	}

	detailRow := 2
	for i, card := range cards {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		summary := []interface{}{
			card.EmployeeID, card.EmployeeName, len(card.Rows), card.TotalWeight, round2(card.WeightedScore), card.Display,
		}
		if err := f.SetSheetRow(summarySheet, cell, &summary); err != nil {
			return err
		}

		for _, row := range card.Rows {
			cell, err := excelize.CoordinatesToCellName(1, detailRow)
			if err != nil {
				return err
			}
			detail := []interface{}{
				card.EmployeeName, row.CycleID, row.KPIName, row.Target, row.Achieved, row.Weight,
				round2(row.Progress), round2(row.RowScore),
			}
			if err := f.SetSheetRow(detailSheet, cell, &detail); err != nil {
				return err
			}
			detailRow++
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ScorecardPDF renders a single employee scorecard as an A4 page.
func ScorecardPDF(w io.Writer, card kpi.Scorecard) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "KPI Scorecard")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", card.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Weighted score: %s", card.Display))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total weight: %.2f", card.TotalWeight))
	pdf.Ln(12)

	widths := []float64{60, 25, 25, 20, 25, 25}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"KPI", "Target", "Achieved", "Weight", "Progress %", "Score"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range card.Rows {
		cells := []string{
			row.KPIName,
			fmt.Sprintf("%.2f", row.Target),
			fmt.Sprintf("%.2f", row.Achieved),
			fmt.Sprintf("%.0f", row.Weight),
			fmt.Sprintf("%.1f", row.Progress),
			fmt.Sprintf("%.2f", row.RowScore),
		}
		if !row.Valid {
			cells[4], cells[5] = "n/a", "n/a"
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
