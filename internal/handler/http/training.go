package http

import (
	"log/slog"
	"net/http"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/training"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/response"
	trainingService "github.com/giu-hrms/hrms-backend-go/internal/service/training"
	"github.com/go-chi/chi/v5"
)

type TrainingHandler interface {
	ListPrograms(w http.ResponseWriter, r *http.Request)
	GetProgram(w http.ResponseWriter, r *http.Request)
	CreateProgram(w http.ResponseWriter, r *http.Request)
	UpdateProgram(w http.ResponseWriter, r *http.Request)
	DeleteProgram(w http.ResponseWriter, r *http.Request)
}

type trainingHandlerImpl struct {
	trainingService trainingService.TrainingService
}

func NewTrainingHandler(service trainingService.TrainingService) TrainingHandler {
	return &trainingHandlerImpl{trainingService: service}
}

// ==================== TRAINING PROGRAM HANDLERS ====================

func (h *trainingHandlerImpl) ListPrograms(w http.ResponseWriter, r *http.Request) {
	filter := training.ProgramFilter{
		ListParams: listParams(r),
		Status:     queryPtr(r, "status"),
	}

	items, page, err := h.trainingService.ListPrograms(r.Context(), filter)
	if err != nil {
		slog.Error("ListPrograms service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *trainingHandlerImpl) GetProgram(w http.ResponseWriter, r *http.Request) {
	result, err := h.trainingService.GetProgram(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *trainingHandlerImpl) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req training.CreateProgramRequest
	if !decodeJSON(w, r, &req, "CreateProgram") {
		return
	}

	result, err := h.trainingService.CreateProgram(r.Context(), req)
	if err != nil {
		slog.Error("CreateProgram service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Training program created successfully", result)
}

func (h *trainingHandlerImpl) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	var req training.UpdateProgramRequest
	if !decodeJSON(w, r, &req, "UpdateProgram") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.trainingService.UpdateProgram(r.Context(), req)
	if err != nil {
		slog.Error("UpdateProgram service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Training program updated successfully", result)
}

func (h *trainingHandlerImpl) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	if err := h.trainingService.DeleteProgram(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteProgram service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Training program deleted successfully", nil)
}
