package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/kpi"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/export"
	"github.com/giu-hrms/hrms-backend-go/internal/service/performance"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePerformanceService struct {
	performance.PerformanceService
	cards []kpi.Scorecard
}

func (f *fakePerformanceService) Scorecards(ctx context.Context, filter kpi.ScorecardFilter) ([]kpi.Scorecard, error) {
	return f.cards, nil
}

func (f *fakePerformanceService) EmployeeScorecard(ctx context.Context, employeeID string, cycleID *string) (kpi.Scorecard, error) {
	for _, c := range f.cards {
		if c.EmployeeID == employeeID {
			return c, nil
		}
	}
	return kpi.Scorecard{}, kpi.ErrScorecardNotFound
}

func newScorecardRouter() chi.Router {
	cards := performance.BuildScorecards([]kpi.Score{
		{ID: "s1", EmployeeID: "emp-1", CycleID: "c1", KPIName: "Teaching", Target: 100, Achieved: 95, Weight: 30},
		{ID: "s2", EmployeeID: "emp-1", CycleID: "c1", KPIName: "Research", Target: 100, Achieved: 88, Weight: 25},
	})
	h := NewPerformanceHandler(&fakePerformanceService{cards: cards})

	r := chi.NewRouter()
	r.Get("/scorecards", h.ListScorecards)
	r.Get("/scorecards/export", h.ExportScorecards)
	r.Get("/scorecards/{employeeID}", h.GetScorecard)
	r.Get("/scorecards/{employeeID}/pdf", h.ExportScorecardPDF)
	return r
}

func TestGetScorecard(t *testing.T) {
	r := newScorecardRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scorecards/emp-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var card map[string]interface{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &card))
	assert.Equal(t, "4.59/5", card["display"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scorecards/emp-404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportScorecards_XLSX(t *testing.T) {
	rec := httptest.NewRecorder()
	newScorecardRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scorecards/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), `attachment; filename="kpi-scorecards-`))
	// xlsx files are zip archives
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
}

func TestExportScorecardPDF(t *testing.T) {
	rec := httptest.NewRecorder()
	newScorecardRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scorecards/emp-1/pdf", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentTypePDF, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="kpi-scorecard-emp-1.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}
