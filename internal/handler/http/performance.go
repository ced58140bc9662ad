package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/appraisal"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/cycle"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/kpi"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/response"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/export"
	"github.com/giu-hrms/hrms-backend-go/internal/service/performance"
	"github.com/go-chi/chi/v5"
)

type PerformanceHandler interface {
	// Performance cycle
	ListCycles(w http.ResponseWriter, r *http.Request)
	GetCycle(w http.ResponseWriter, r *http.Request)
	CreateCycle(w http.ResponseWriter, r *http.Request)
	UpdateCycle(w http.ResponseWriter, r *http.Request)
	DeleteCycle(w http.ResponseWriter, r *http.Request)

	// Appraisal
	ListAppraisals(w http.ResponseWriter, r *http.Request)
	GetAppraisal(w http.ResponseWriter, r *http.Request)
	CreateAppraisal(w http.ResponseWriter, r *http.Request)
	UpdateAppraisal(w http.ResponseWriter, r *http.Request)
	DeleteAppraisal(w http.ResponseWriter, r *http.Request)

	// KPI score
	ListScores(w http.ResponseWriter, r *http.Request)
	GetScore(w http.ResponseWriter, r *http.Request)
	CreateScore(w http.ResponseWriter, r *http.Request)
	UpdateScore(w http.ResponseWriter, r *http.Request)
	DeleteScore(w http.ResponseWriter, r *http.Request)

	// Scorecards
	ListScorecards(w http.ResponseWriter, r *http.Request)
	GetScorecard(w http.ResponseWriter, r *http.Request)
	ExportScorecards(w http.ResponseWriter, r *http.Request)
	ExportScorecardPDF(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{performanceService: performanceService}
}

// ==================== PERFORMANCE CYCLE HANDLERS ====================

func (h *performanceHandlerImpl) ListCycles(w http.ResponseWriter, r *http.Request) {
	filter := cycle.CycleFilter{
		ListParams: listParams(r),
		Status:     queryPtr(r, "status"),
	}

	items, page, err := h.performanceService.ListCycles(r.Context(), filter)
	if err != nil {
		slog.Error("ListCycles service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *performanceHandlerImpl) GetCycle(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.GetCycle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *performanceHandlerImpl) CreateCycle(w http.ResponseWriter, r *http.Request) {
	var req cycle.CreateCycleRequest
	if !decodeJSON(w, r, &req, "CreateCycle") {
		return
	}

	result, err := h.performanceService.CreateCycle(r.Context(), req)
	if err != nil {
		slog.Error("CreateCycle service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Performance cycle created successfully", result)
}

func (h *performanceHandlerImpl) UpdateCycle(w http.ResponseWriter, r *http.Request) {
	var req cycle.UpdateCycleRequest
	if !decodeJSON(w, r, &req, "UpdateCycle") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.performanceService.UpdateCycle(r.Context(), req)
	if err != nil {
		slog.Error("UpdateCycle service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Performance cycle updated successfully", result)
}

func (h *performanceHandlerImpl) DeleteCycle(w http.ResponseWriter, r *http.Request) {
	if err := h.performanceService.DeleteCycle(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteCycle service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Performance cycle deleted successfully", nil)
}

// ==================== APPRAISAL HANDLERS ====================

func (h *performanceHandlerImpl) ListAppraisals(w http.ResponseWriter, r *http.Request) {
	filter := appraisal.AppraisalFilter{
		ListParams: listParams(r),
		EmployeeID: queryPtr(r, "employee_id"),
		CycleID:    queryPtr(r, "cycle_id"),
		Status:     queryPtr(r, "status"),
	}

	items, page, err := h.performanceService.ListAppraisals(r.Context(), filter)
	if err != nil {
		slog.Error("ListAppraisals service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *performanceHandlerImpl) GetAppraisal(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.GetAppraisal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *performanceHandlerImpl) CreateAppraisal(w http.ResponseWriter, r *http.Request) {
	var req appraisal.CreateAppraisalRequest
	if !decodeJSON(w, r, &req, "CreateAppraisal") {
		return
	}

	result, err := h.performanceService.CreateAppraisal(r.Context(), req)
	if err != nil {
		slog.Error("CreateAppraisal service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Appraisal created successfully", result)
}

func (h *performanceHandlerImpl) UpdateAppraisal(w http.ResponseWriter, r *http.Request) {
	var req appraisal.UpdateAppraisalRequest
	if !decodeJSON(w, r, &req, "UpdateAppraisal") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.performanceService.UpdateAppraisal(r.Context(), req)
	if err != nil {
		slog.Error("UpdateAppraisal service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Appraisal updated successfully", result)
}

func (h *performanceHandlerImpl) DeleteAppraisal(w http.ResponseWriter, r *http.Request) {
	if err := h.performanceService.DeleteAppraisal(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteAppraisal service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Appraisal deleted successfully", nil)
}

// ==================== KPI SCORE HANDLERS ====================

func (h *performanceHandlerImpl) ListScores(w http.ResponseWriter, r *http.Request) {
	filter := kpi.ScoreFilter{
		ListParams: listParams(r),
		EmployeeID: queryPtr(r, "employee_id"),
		CycleID:    queryPtr(r, "cycle_id"),
	}

	items, page, err := h.performanceService.ListScores(r.Context(), filter)
	if err != nil {
		slog.Error("ListScores service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *performanceHandlerImpl) GetScore(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.GetScore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *performanceHandlerImpl) CreateScore(w http.ResponseWriter, r *http.Request) {
	var req kpi.CreateScoreRequest
	if !decodeJSON(w, r, &req, "CreateScore") {
		return
	}

	result, err := h.performanceService.CreateScore(r.Context(), req)
	if err != nil {
		slog.Error("CreateScore service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "KPI score created successfully", result)
}

func (h *performanceHandlerImpl) UpdateScore(w http.ResponseWriter, r *http.Request) {
	var req kpi.UpdateScoreRequest
	if !decodeJSON(w, r, &req, "UpdateScore") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.performanceService.UpdateScore(r.Context(), req)
	if err != nil {
		slog.Error("UpdateScore service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "KPI score updated successfully", result)
}

func (h *performanceHandlerImpl) DeleteScore(w http.ResponseWriter, r *http.Request) {
	if err := h.performanceService.DeleteScore(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteScore service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "KPI score deleted successfully", nil)
}

// ==================== SCORECARD HANDLERS ====================

func scorecardFilter(r *http.Request) kpi.ScorecardFilter {
	return kpi.ScorecardFilter{
		CycleID:    queryPtr(r, "cycle_id"),
		EmployeeID: queryPtr(r, "employee_id"),
	}
}

func (h *performanceHandlerImpl) ListScorecards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.performanceService.Scorecards(r.Context(), scorecardFilter(r))
	if err != nil {
		slog.Error("ListScorecards service error", "error", err)
		response.HandleError(w, err)
		return
	}

	result := make([]kpi.ScorecardResponse, 0, len(cards))
	for _, c := range cards {
		result = append(result, kpi.ToScorecardResponse(c))
	}
	response.Success(w, result)
}

func (h *performanceHandlerImpl) GetScorecard(w http.ResponseWriter, r *http.Request) {
	card, err := h.performanceService.EmployeeScorecard(r.Context(), chi.URLParam(r, "employeeID"), queryPtr(r, "cycle_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, kpi.ToScorecardResponse(card))
}

// ExportScorecards streams every scorecard matching the query as an XLSX workbook.
func (h *performanceHandlerImpl) ExportScorecards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.performanceService.Scorecards(r.Context(), scorecardFilter(r))
	if err != nil {
		slog.Error("ExportScorecards service error", "error", err)
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.ScorecardsXLSX(&buf, cards); err != nil {
		slog.Error("ExportScorecards render error", "error", err)
		response.InternalServerError(w, "Failed to generate workbook")
		return
	}

	filename := fmt.Sprintf("kpi-scorecards-%s.xlsx", time.Now().Format("20060102"))
	writeAttachment(w, export.ContentTypeXLSX, filename, buf.Bytes())
}

func (h *performanceHandlerImpl) ExportScorecardPDF(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	card, err := h.performanceService.EmployeeScorecard(r.Context(), employeeID, queryPtr(r, "cycle_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.ScorecardPDF(&buf, card); err != nil {
		slog.Error("ExportScorecardPDF render error", "error", err)
		response.InternalServerError(w, "Failed to generate PDF")
		return
	}

	writeAttachment(w, export.ContentTypePDF, fmt.Sprintf("kpi-scorecard-%s.pdf", employeeID), buf.Bytes())
}

// writeAttachment sends a rendered export as a file download.
func writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
