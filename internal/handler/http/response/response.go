package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
)

// Error codes carried in ErrorDetail.Code. The console switches on these.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeConflict         = "CONFLICT"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
)

// Response is the envelope of every JSON body the API writes.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
	Meta    *Meta        `json:"meta,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Meta is the paging block of a list response.
type Meta struct {
	Page       int   `json:"page,omitempty"`
	Limit      int   `json:"limit,omitempty"`
	TotalItems int64 `json:"total_items,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// headers are gone; all that is left is the log
		slog.Error("failed to encode response", "status", status, "error", err)
	}
}

func succeed(w http.ResponseWriter, status int, message string, data interface{}, meta *Meta) {
	writeJSON(w, status, Response{Success: true, Message: message, Data: data, Meta: meta})
}

func fail(w http.ResponseWriter, status int, code, message string, details map[string]string) {
	writeJSON(w, status, Response{Error: &ErrorDetail{Code: code, Message: message, Details: details}})
}

func Success(w http.ResponseWriter, data interface{}) {
	succeed(w, http.StatusOK, "", data, nil)
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	succeed(w, http.StatusOK, message, data, nil)
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	succeed(w, http.StatusCreated, message, data, nil)
}

// List writes a list payload; page is nil when the whole table was returned.
func List(w http.ResponseWriter, data interface{}, page *shared.PageInfo) {
	if page == nil {
		Success(w, data)
		return
	}
	succeed(w, http.StatusOK, "", data, &Meta{
		Page:       page.Page,
		Limit:      page.Limit,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	})
}

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	fail(w, http.StatusBadRequest, CodeBadRequest, message, details)
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	fail(w, http.StatusUnprocessableEntity, CodeValidation, "Validation failed", details)
}

func Unauthorized(w http.ResponseWriter, message string) {
	fail(w, http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	fail(w, http.StatusForbidden, CodeForbidden, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	fail(w, http.StatusNotFound, CodeNotFound, message, nil)
}

func MethodNotAllowed(w http.ResponseWriter, message string) {
	fail(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	fail(w, http.StatusConflict, CodeConflict, message, nil)
}

// UnprocessableEntity reports a foreign key that points at no row.
func UnprocessableEntity(w http.ResponseWriter, message string) {
	fail(w, http.StatusUnprocessableEntity, CodeInvalidReference, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	fail(w, http.StatusInternalServerError, CodeInternal, message, nil)
}
