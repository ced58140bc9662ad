package http

import (
	"log/slog"
	"net/http"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/assignment"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/contract"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/job"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/response"
	"github.com/giu-hrms/hrms-backend-go/internal/service/workforce"
	"github.com/go-chi/chi/v5"
)

type WorkforceHandler interface {
	// Employee
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)

	// Job
	ListJobs(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	CreateJob(w http.ResponseWriter, r *http.Request)
	UpdateJob(w http.ResponseWriter, r *http.Request)
	DeleteJob(w http.ResponseWriter, r *http.Request)

	// Job assignment
	ListAssignments(w http.ResponseWriter, r *http.Request)
	GetAssignment(w http.ResponseWriter, r *http.Request)
	CreateAssignment(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)

	// Contract
	ListContracts(w http.ResponseWriter, r *http.Request)
	GetContract(w http.ResponseWriter, r *http.Request)
	CreateContract(w http.ResponseWriter, r *http.Request)
	UpdateContract(w http.ResponseWriter, r *http.Request)
	DeleteContract(w http.ResponseWriter, r *http.Request)
}

type workforceHandlerImpl struct {
	workforceService workforce.WorkforceService
}

func NewWorkforceHandler(workforceService workforce.WorkforceService) WorkforceHandler {
	return &workforceHandlerImpl{workforceService: workforceService}
}

// ==================== EMPLOYEE HANDLERS ====================

func (h *workforceHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		ListParams:   listParams(r),
		DepartmentID: queryPtr(r, "department_id"),
		JobID:        queryPtr(r, "job_id"),
		Status:       queryPtr(r, "status"),
	}

	items, page, err := h.workforceService.ListEmployees(r.Context(), filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *workforceHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.workforceService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *workforceHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, &req, "CreateEmployee") {
		return
	}

	result, err := h.workforceService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", result)
}

func (h *workforceHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req, "UpdateEmployee") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workforceService.UpdateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

func (h *workforceHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.workforceService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// ==================== JOB HANDLERS ====================

func (h *workforceHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	filter := job.JobFilter{
		ListParams: listParams(r),
		Level:      queryPtr(r, "level"),
		Status:     queryPtr(r, "status"),
	}

	items, page, err := h.workforceService.ListJobs(r.Context(), filter)
	if err != nil {
		slog.Error("ListJobs service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *workforceHandlerImpl) GetJob(w http.ResponseWriter, r *http.Request) {
	result, err := h.workforceService.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *workforceHandlerImpl) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest
	if !decodeJSON(w, r, &req, "CreateJob") {
		return
	}

	result, err := h.workforceService.CreateJob(r.Context(), req)
	if err != nil {
		slog.Error("CreateJob service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job created successfully", result)
}

func (h *workforceHandlerImpl) UpdateJob(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateJobRequest
	if !decodeJSON(w, r, &req, "UpdateJob") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workforceService.UpdateJob(r.Context(), req)
	if err != nil {
		slog.Error("UpdateJob service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job updated successfully", result)
}

func (h *workforceHandlerImpl) DeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.workforceService.DeleteJob(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteJob service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job deleted successfully", nil)
}

// ==================== JOB ASSIGNMENT HANDLERS ====================

func (h *workforceHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	filter := assignment.AssignmentFilter{
		ListParams:   listParams(r),
		EmployeeID:   queryPtr(r, "employee_id"),
		JobID:        queryPtr(r, "job_id"),
		DepartmentID: queryPtr(r, "department_id"),
		Status:       queryPtr(r, "status"),
	}

	items, page, err := h.workforceService.ListAssignments(r.Context(), filter)
	if err != nil {
		slog.Error("ListAssignments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *workforceHandlerImpl) GetAssignment(w http.ResponseWriter, r *http.Request) {
	result, err := h.workforceService.GetAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *workforceHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest
	if !decodeJSON(w, r, &req, "CreateAssignment") {
		return
	}

	result, err := h.workforceService.CreateAssignment(r.Context(), req)
	if err != nil {
		slog.Error("CreateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job assignment created successfully", result)
}

func (h *workforceHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignment.UpdateAssignmentRequest
	if !decodeJSON(w, r, &req, "UpdateAssignment") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workforceService.UpdateAssignment(r.Context(), req)
	if err != nil {
		slog.Error("UpdateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job assignment updated successfully", result)
}

func (h *workforceHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.workforceService.DeleteAssignment(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job assignment deleted successfully", nil)
}

// ==================== CONTRACT HANDLERS ====================

func (h *workforceHandlerImpl) ListContracts(w http.ResponseWriter, r *http.Request) {
	filter := contract.ContractFilter{
		ListParams: listParams(r),
		EmployeeID: queryPtr(r, "employee_id"),
		Type:       queryPtr(r, "type"),
		Status:     queryPtr(r, "status"),
	}

	items, page, err := h.workforceService.ListContracts(r.Context(), filter)
	if err != nil {
		slog.Error("ListContracts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.List(w, items, page)
}

func (h *workforceHandlerImpl) GetContract(w http.ResponseWriter, r *http.Request) {
	result, err := h.workforceService.GetContract(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *workforceHandlerImpl) CreateContract(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateContractRequest
	if !decodeJSON(w, r, &req, "CreateContract") {
		return
	}

	result, err := h.workforceService.CreateContract(r.Context(), req)
	if err != nil {
		slog.Error("CreateContract service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Contract created successfully", result)
}

func (h *workforceHandlerImpl) UpdateContract(w http.ResponseWriter, r *http.Request) {
	var req contract.UpdateContractRequest
	if !decodeJSON(w, r, &req, "UpdateContract") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workforceService.UpdateContract(r.Context(), req)
	if err != nil {
		slog.Error("UpdateContract service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contract updated successfully", result)
}

func (h *workforceHandlerImpl) DeleteContract(w http.ResponseWriter, r *http.Request) {
	if err := h.workforceService.DeleteContract(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteContract service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contract deleted successfully", nil)
}
