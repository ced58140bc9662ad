package response

import (
	"errors"
	"net/http"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/assignment"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/contract"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/job"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/department"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/faculty"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/university"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/appraisal"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/cycle"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/kpi"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/training"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailAlreadyExists), errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrOAuthDisabled):
		NotFound(w, "Google sign-in is not enabled")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "Invalid OAuth state", nil)
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrCannotChangeOwnRole):
		Forbidden(w, "You cannot change your own role")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)

	// Organization domain errors
	case errors.Is(err, university.ErrUniversityNotFound):
		NotFound(w, "University not found")
	case errors.Is(err, university.ErrUniversityInUse):
		Conflict(w, "University still has faculties")
	case errors.Is(err, faculty.ErrFacultyNotFound):
		NotFound(w, "Faculty not found")
	case errors.Is(err, faculty.ErrUniversityNotFound):
		UnprocessableEntity(w, "Referenced university does not exist")
	case errors.Is(err, faculty.ErrFacultyInUse):
		Conflict(w, "Faculty still has departments")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrInvalidReference):
		UnprocessableEntity(w, "Referenced faculty or manager does not exist")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department is still referenced by employees or assignments")

	// Workforce domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "An employee with this email already exists")
	case errors.Is(err, employee.ErrInvalidReference):
		UnprocessableEntity(w, "Referenced department or job does not exist")
	case errors.Is(err, employee.ErrEmployeeInUse):
		Conflict(w, "Employee is still referenced by other records")
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrJobInUse):
		Conflict(w, "Job is still referenced by employees or assignments")
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Job assignment not found")
	case errors.Is(err, assignment.ErrInvalidReference):
		UnprocessableEntity(w, "Referenced employee, job or department does not exist")
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrEmployeeNotFound):
		UnprocessableEntity(w, "Referenced employee does not exist")

	// Training domain errors
	case errors.Is(err, training.ErrProgramNotFound):
		NotFound(w, "Training program not found")

	// Performance domain errors
	case errors.Is(err, cycle.ErrCycleNotFound):
		NotFound(w, "Performance cycle not found")
	case errors.Is(err, appraisal.ErrAppraisalNotFound):
		NotFound(w, "Appraisal not found")
	case errors.Is(err, appraisal.ErrInvalidReference):
		UnprocessableEntity(w, "Referenced employee, cycle or reviewer does not exist")
	case errors.Is(err, kpi.ErrScoreNotFound):
		NotFound(w, "KPI score not found")
	case errors.Is(err, kpi.ErrInvalidReference):
		UnprocessableEntity(w, "Referenced employee or cycle does not exist")
	case errors.Is(err, kpi.ErrScorecardNotFound):
		NotFound(w, "No KPI scores recorded for this employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
