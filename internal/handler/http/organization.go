package http

import (
	"log/slog"
	"net/http"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/department"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/faculty"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/university"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/response"
	"github.com/giu-hrms/hrms-backend-go/internal/service/organization"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler interface {
	// University
	ListUniversities(w http.ResponseWriter, r *http.Request)
	GetUniversity(w http.ResponseWriter, r *http.Request)
	CreateUniversity(w http.ResponseWriter, r *http.Request)
	UpdateUniversity(w http.ResponseWriter, r *http.Request)
	DeleteUniversity(w http.ResponseWriter, r *http.Request)

	// Faculty
	ListFaculties(w http.ResponseWriter, r *http.Request)
	GetFaculty(w http.ResponseWriter, r *http.Request)
	CreateFaculty(w http.ResponseWriter, r *http.Request)
	UpdateFaculty(w http.ResponseWriter, r *http.Request)
	DeleteFaculty(w http.ResponseWriter, r *http.Request)

	// Department
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)
}

type organizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &organizationHandlerImpl{organizationService: organizationService}
}

// ==================== UNIVERSITY HANDLERS ====================

func (h *organizationHandlerImpl) ListUniversities(w http.ResponseWriter, r *http.Request) {
	filter := university.UniversityFilter{ListParams: listParams(r)}

	items, page, err := h.organizationService.ListUniversities(r.Context(), filter)
	if err != nil {
		slog.Error("ListUniversities service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *organizationHandlerImpl) GetUniversity(w http.ResponseWriter, r *http.Request) {
	result, err := h.organizationService.GetUniversity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *organizationHandlerImpl) CreateUniversity(w http.ResponseWriter, r *http.Request) {
	var req university.CreateUniversityRequest
	if !decodeJSON(w, r, &req, "CreateUniversity") {
		return
	}

	result, err := h.organizationService.CreateUniversity(r.Context(), req)
	if err != nil {
		slog.Error("CreateUniversity service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "University created successfully", result)
}

func (h *organizationHandlerImpl) UpdateUniversity(w http.ResponseWriter, r *http.Request) {
	var req university.UpdateUniversityRequest
	if !decodeJSON(w, r, &req, "UpdateUniversity") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.organizationService.UpdateUniversity(r.Context(), req)
	if err != nil {
		slog.Error("UpdateUniversity service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "University updated successfully", result)
}

func (h *organizationHandlerImpl) DeleteUniversity(w http.ResponseWriter, r *http.Request) {
	if err := h.organizationService.DeleteUniversity(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteUniversity service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "University deleted successfully", nil)
}

// ==================== FACULTY HANDLERS ====================

func (h *organizationHandlerImpl) ListFaculties(w http.ResponseWriter, r *http.Request) {
	filter := faculty.FacultyFilter{
		ListParams:   listParams(r),
		UniversityID: queryPtr(r, "university_id"),
	}

	items, page, err := h.organizationService.ListFaculties(r.Context(), filter)
	if err != nil {
		slog.Error("ListFaculties service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *organizationHandlerImpl) GetFaculty(w http.ResponseWriter, r *http.Request) {
	result, err := h.organizationService.GetFaculty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *organizationHandlerImpl) CreateFaculty(w http.ResponseWriter, r *http.Request) {
	var req faculty.CreateFacultyRequest
	if !decodeJSON(w, r, &req, "CreateFaculty") {
		return
	}

	result, err := h.organizationService.CreateFaculty(r.Context(), req)
	if err != nil {
		slog.Error("CreateFaculty service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Faculty created successfully", result)
}

func (h *organizationHandlerImpl) UpdateFaculty(w http.ResponseWriter, r *http.Request) {
	var req faculty.UpdateFacultyRequest
	if !decodeJSON(w, r, &req, "UpdateFaculty") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.organizationService.UpdateFaculty(r.Context(), req)
	if err != nil {
		slog.Error("UpdateFaculty service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Faculty updated successfully", result)
}

func (h *organizationHandlerImpl) DeleteFaculty(w http.ResponseWriter, r *http.Request) {
	if err := h.organizationService.DeleteFaculty(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteFaculty service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Faculty deleted successfully", nil)
}

// ==================== DEPARTMENT HANDLERS ====================

func (h *organizationHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	filter := department.DepartmentFilter{
		ListParams: listParams(r),
		FacultyID:  queryPtr(r, "faculty_id"),
	}

	items, page, err := h.organizationService.ListDepartments(r.Context(), filter)
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *organizationHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.organizationService.GetDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *organizationHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if !decodeJSON(w, r, &req, "CreateDepartment") {
		return
	}

	result, err := h.organizationService.CreateDepartment(r.Context(), req)
	if err != nil {
		slog.Error("CreateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", result)
}

func (h *organizationHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if !decodeJSON(w, r, &req, "UpdateDepartment") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.organizationService.UpdateDepartment(r.Context(), req)
	if err != nil {
		slog.Error("UpdateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department updated successfully", result)
}

func (h *organizationHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.organizationService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}
