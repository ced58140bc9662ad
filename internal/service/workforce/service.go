package workforce

import (
	"context"
	"strings"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/assignment"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/contract"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/job"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/sse"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type WorkforceService interface {
	// Employee operations
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, *shared.PageInfo, error)
	UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error

	// Job operations
	CreateJob(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error)
	GetJob(ctx context.Context, id string) (job.JobResponse, error)
	ListJobs(ctx context.Context, filter job.JobFilter) ([]job.JobResponse, *shared.PageInfo, error)
	UpdateJob(ctx context.Context, req job.UpdateJobRequest) (job.JobResponse, error)
	DeleteJob(ctx context.Context, id string) error

	// Job assignment operations
	CreateAssignment(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error)
	GetAssignment(ctx context.Context, id string) (assignment.AssignmentResponse, error)
	ListAssignments(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.AssignmentResponse, *shared.PageInfo, error)
	UpdateAssignment(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id string) error

	// Contract operations
	CreateContract(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error)
	GetContract(ctx context.Context, id string) (contract.ContractResponse, error)
	ListContracts(ctx context.Context, filter contract.ContractFilter) ([]contract.ContractResponse, *shared.PageInfo, error)
	UpdateContract(ctx context.Context, req contract.UpdateContractRequest) (contract.ContractResponse, error)
	DeleteContract(ctx context.Context, id string) error
}

const (
	tableEmployees   = "employees"
	tableJobs        = "jobs"
	tableAssignments = "job_assignments"
	tableContracts   = "contracts"
)

type workforceServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	jobRepo        job.JobRepository
	assignmentRepo assignment.AssignmentRepository
	contractRepo   contract.ContractRepository
	tx             shared.Transactor
	events         sse.Publisher
}

func NewWorkforceService(
	employeeRepo employee.EmployeeRepository,
	jobRepo job.JobRepository,
	assignmentRepo assignment.AssignmentRepository,
	contractRepo contract.ContractRepository,
	tx shared.Transactor,
	events sse.Publisher,
) WorkforceService {
	return &workforceServiceImpl{
		employeeRepo:   employeeRepo,
		jobRepo:        jobRepo,
		assignmentRepo: assignmentRepo,
		contractRepo:   contractRepo,
		tx:             tx,
		events:         events,
	}
}

// storeError translates constraint violations into domain errors.
func storeError(err error, invalidRef, inUse error) error {
	switch {
	case database.IsForeignKeyViolation(err) && inUse != nil:
		return inUse
	case database.IsForeignKeyViolation(err) && invalidRef != nil:
		return invalidRef
	}
	return err
}

func (s *workforceServiceImpl) publish(table, action, id string) {
	s.events.Publish(sse.Event{Table: table, Action: action, ID: id})
}

// mergedEndDate is the end date a partial update leaves on the record.
func mergedEndDate(patch *string, current *string) string {
	if patch != nil {
		return *patch
	}
	if current != nil {
		return *current
	}
	return ""
}

func mergedDate(patch *string, current string) string {
	if patch != nil {
		return *patch
	}
	return current
}

func mergedAmount(patch, current *decimal.Decimal) *decimal.Decimal {
	if patch != nil {
		return patch
	}
	return current
}

// ==================== EMPLOYEE OPERATIONS ====================

func (s *workforceServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	status := employee.Status(req.Status)
	if status == "" {
		status = employee.StatusActive
	}
	var gender *employee.Gender
	if g := shared.NilIfEmpty(req.Gender); g != nil {
		v := employee.Gender(*g)
		gender = &v
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        shared.NilIfEmpty(req.Phone),
		DepartmentID: shared.NilIfEmpty(req.DepartmentID),
		JobID:        shared.NilIfEmpty(req.JobID),
		HireDate:     shared.ParseDate(req.HireDate),
		Status:       status,
		Gender:       gender,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, storeError(err, employee.ErrInvalidReference, nil)
	}

	s.publish(tableEmployees, sse.ActionCreated, created.ID)
	return employee.ToResponse(created), nil
}

func (s *workforceServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	entity, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(entity), nil
}

func (s *workforceServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, *shared.PageInfo, error) {
	filter.Normalize()

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

func (s *workforceServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		if database.IsUniqueViolation(err) {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, storeError(err, employee.ErrInvalidReference, nil)
	}

	s.publish(tableEmployees, sse.ActionUpdated, req.ID)
	return s.GetEmployee(ctx, req.ID)
}

func (s *workforceServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return storeError(err, nil, employee.ErrEmployeeInUse)
	}

	s.publish(tableEmployees, sse.ActionDeleted, id)
	return nil
}

// ==================== JOB OPERATIONS ====================

func (s *workforceServiceImpl) CreateJob(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	level := job.Level(req.Level)
	if level == "" {
		level = job.LevelEntry
	}
	status := job.Status(req.Status)
	if status == "" {
		status = job.StatusOpen
	}

	created, err := s.jobRepo.Create(ctx, job.Job{
		Title:       strings.TrimSpace(req.Title),
		Description: shared.NilIfEmpty(req.Description),
		Level:       level,
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
		Status:      status,
		Category:    shared.NilIfEmpty(req.Category),
	})
	if err != nil {
		return job.JobResponse{}, err
	}

	s.publish(tableJobs, sse.ActionCreated, created.ID)
	return job.ToResponse(created), nil
}

func (s *workforceServiceImpl) GetJob(ctx context.Context, id string) (job.JobResponse, error) {
	entity, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}
	return job.ToResponse(entity), nil
}

func (s *workforceServiceImpl) ListJobs(ctx context.Context, filter job.JobFilter) ([]job.JobResponse, *shared.PageInfo, error) {
	filter.Normalize()

	jobs, total, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, job.ToResponse(j))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

func (s *workforceServiceImpl) UpdateJob(ctx context.Context, req job.UpdateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.jobRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		var errs validator.ValidationErrors
		job.ValidateSalaryRange(&errs, mergedAmount(req.MinSalary, current.MinSalary), mergedAmount(req.MaxSalary, current.MaxSalary))
		if err := errs.OrNil(); err != nil {
			return err
		}

		return s.jobRepo.Update(ctx, req)
	})
	if err != nil {
		return job.JobResponse{}, err
	}

	s.publish(tableJobs, sse.ActionUpdated, req.ID)
	return s.GetJob(ctx, req.ID)
}

func (s *workforceServiceImpl) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return storeError(err, nil, job.ErrJobInUse)
	}

	s.publish(tableJobs, sse.ActionDeleted, id)
	return nil
}

// ==================== JOB ASSIGNMENT OPERATIONS ====================

func (s *workforceServiceImpl) CreateAssignment(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	status := assignment.Status(req.Status)
	if status == "" {
		status = assignment.StatusActive
	}

	created, err := s.assignmentRepo.Create(ctx, assignment.Assignment{
		EmployeeID:   req.EmployeeID,
		JobID:        req.JobID,
		DepartmentID: shared.NilIfEmpty(req.DepartmentID),
		StartDate:    shared.ParseDate(req.StartDate),
		EndDate:      shared.ParseDatePtr(req.EndDate),
		Salary:       req.Salary,
		Status:       status,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, storeError(err, assignment.ErrInvalidReference, nil)
	}

	s.publish(tableAssignments, sse.ActionCreated, created.ID)
	return assignment.ToResponse(created), nil
}

func (s *workforceServiceImpl) GetAssignment(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	entity, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	return assignment.ToResponse(entity), nil
}

func (s *workforceServiceImpl) ListAssignments(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.AssignmentResponse, *shared.PageInfo, error) {
	filter.Normalize()

	assignments, total, err := s.assignmentRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, assignment.ToResponse(a))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

func (s *workforceServiceImpl) UpdateAssignment(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.assignmentRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		var errs validator.ValidationErrors
		validator.DateNotBefore(&errs, "end_date",
			mergedDate(req.StartDate, shared.FormatDate(current.StartDate)),
			mergedEndDate(req.EndDate, shared.FormatDatePtr(current.EndDate)),
		)
		if err := errs.OrNil(); err != nil {
			return err
		}

		return storeError(s.assignmentRepo.Update(ctx, req), assignment.ErrInvalidReference, nil)
	})
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	s.publish(tableAssignments, sse.ActionUpdated, req.ID)
	return s.GetAssignment(ctx, req.ID)
}

func (s *workforceServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(tableAssignments, sse.ActionDeleted, id)
	return nil
}

// ==================== CONTRACT OPERATIONS ====================

func (s *workforceServiceImpl) CreateContract(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	contractType := contract.Type(req.Type)
	if contractType == "" {
		contractType = contract.TypePermanent
	}
	status := contract.Status(req.Status)
	if status == "" {
		status = contract.StatusActive
	}

	created, err := s.contractRepo.Create(ctx, contract.Contract{
		EmployeeID: req.EmployeeID,
		Type:       contractType,
		StartDate:  shared.ParseDate(req.StartDate),
		EndDate:    shared.ParseDatePtr(req.EndDate),
		Salary:     *req.Salary,
		Status:     status,
	})
	if err != nil {
		return contract.ContractResponse{}, storeError(err, contract.ErrEmployeeNotFound, nil)
	}

	s.publish(tableContracts, sse.ActionCreated, created.ID)
	return contract.ToResponse(created), nil
}

func (s *workforceServiceImpl) GetContract(ctx context.Context, id string) (contract.ContractResponse, error) {
	entity, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return contract.ToResponse(entity), nil
}

func (s *workforceServiceImpl) ListContracts(ctx context.Context, filter contract.ContractFilter) ([]contract.ContractResponse, *shared.PageInfo, error) {
	filter.Normalize()

	contracts, total, err := s.contractRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]contract.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, contract.ToResponse(c))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

func (s *workforceServiceImpl) UpdateContract(ctx context.Context, req contract.UpdateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.contractRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		var errs validator.ValidationErrors
		validator.DateNotBefore(&errs, "end_date",
			mergedDate(req.StartDate, shared.FormatDate(current.StartDate)),
			mergedEndDate(req.EndDate, shared.FormatDatePtr(current.EndDate)),
		)
		if err := errs.OrNil(); err != nil {
			return err
		}

		return storeError(s.contractRepo.Update(ctx, req), contract.ErrEmployeeNotFound, nil)
	})
	if err != nil {
		return contract.ContractResponse{}, err
	}

	s.publish(tableContracts, sse.ActionUpdated, req.ID)
	return s.GetContract(ctx, req.ID)
}

func (s *workforceServiceImpl) DeleteContract(ctx context.Context, id string) error {
	if err := s.contractRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(tableContracts, sse.ActionDeleted, id)
	return nil
}
