package organization

import (
	"context"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/department"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/faculty"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/university"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/sse"
)

type OrganizationService interface {
	// University operations
	CreateUniversity(ctx context.Context, req university.CreateUniversityRequest) (university.UniversityResponse, error)
	GetUniversity(ctx context.Context, id string) (university.UniversityResponse, error)
	ListUniversities(ctx context.Context, filter university.UniversityFilter) ([]university.UniversityResponse, *shared.PageInfo, error)
	UpdateUniversity(ctx context.Context, req university.UpdateUniversityRequest) (university.UniversityResponse, error)
	DeleteUniversity(ctx context.Context, id string) error

	// Faculty operations
	CreateFaculty(ctx context.Context, req faculty.CreateFacultyRequest) (faculty.FacultyResponse, error)
	GetFaculty(ctx context.Context, id string) (faculty.FacultyResponse, error)
	ListFaculties(ctx context.Context, filter faculty.FacultyFilter) ([]faculty.FacultyResponse, *shared.PageInfo, error)
	UpdateFaculty(ctx context.Context, req faculty.UpdateFacultyRequest) (faculty.FacultyResponse, error)
	DeleteFaculty(ctx context.Context, id string) error

	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context, filter department.DepartmentFilter) ([]department.DepartmentResponse, *shared.PageInfo, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error
}

const (
	tableUniversities = "universities"
	tableFaculties    = "faculties"
	tableDepartments  = "departments"
)

type organizationServiceImpl struct {
	universityRepo university.UniversityRepository
	facultyRepo    faculty.FacultyRepository
	departmentRepo department.DepartmentRepository
	events         sse.Publisher
}

func NewOrganizationService(
	universityRepo university.UniversityRepository,
	facultyRepo faculty.FacultyRepository,
	departmentRepo department.DepartmentRepository,
	events sse.Publisher,
) OrganizationService {
	return &organizationServiceImpl{
		universityRepo: universityRepo,
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		events:         events,
	}
}

// storeError translates constraint violations into domain errors.
// invalidRef is returned for unknown references on write, inUse when a
// delete is blocked by rows that still point at the record.
func storeError(err error, invalidRef, inUse error) error {
	switch {
	case database.IsForeignKeyViolation(err) && inUse != nil:
		return inUse
	case database.IsForeignKeyViolation(err) && invalidRef != nil:
		return invalidRef
	}
	return err
}

func (s *organizationServiceImpl) publish(table, action, id string) {
	s.events.Publish(sse.Event{Table: table, Action: action, ID: id})
}

// ==================== UNIVERSITY OPERATIONS ====================

func (s *organizationServiceImpl) CreateUniversity(ctx context.Context, req university.CreateUniversityRequest) (university.UniversityResponse, error) {
	if err := req.Validate(); err != nil {
		return university.UniversityResponse{}, err
	}

	created, err := s.universityRepo.Create(ctx, university.University{
		Name:         req.Name,
		Location:     shared.NilIfEmpty(req.Location),
		ContactEmail: shared.NilIfEmpty(req.ContactEmail),
	})
	if err != nil {
		return university.UniversityResponse{}, err
	}

	s.publish(tableUniversities, sse.ActionCreated, created.ID)
	return university.ToResponse(created), nil
}

func (s *organizationServiceImpl) GetUniversity(ctx context.Context, id string) (university.UniversityResponse, error) {
	entity, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		return university.UniversityResponse{}, err
	}
	return university.ToResponse(entity), nil
}

func (s *organizationServiceImpl) ListUniversities(ctx context.Context, filter university.UniversityFilter) ([]university.UniversityResponse, *shared.PageInfo, error) {
	filter.Normalize()

	universities, total, err := s.universityRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]university.UniversityResponse, 0, len(universities))
	for _, u := range universities {
		responses = append(responses, university.ToResponse(u))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

func (s *organizationServiceImpl) UpdateUniversity(ctx context.Context, req university.UpdateUniversityRequest) (university.UniversityResponse, error) {
	if err := req.Validate(); err != nil {
		return university.UniversityResponse{}, err
	}

	if err := s.universityRepo.Update(ctx, req); err != nil {
		return university.UniversityResponse{}, err
	}

	s.publish(tableUniversities, sse.ActionUpdated, req.ID)
	return s.GetUniversity(ctx, req.ID)
}

func (s *organizationServiceImpl) DeleteUniversity(ctx context.Context, id string) error {
	if err := s.universityRepo.Delete(ctx, id); err != nil {
		return storeError(err, nil, university.ErrUniversityInUse)
	}

	s.publish(tableUniversities, sse.ActionDeleted, id)
	return nil
}

// ==================== FACULTY OPERATIONS ====================

func (s *organizationServiceImpl) CreateFaculty(ctx context.Context, req faculty.CreateFacultyRequest) (faculty.FacultyResponse, error) {
	if err := req.Validate(); err != nil {
		return faculty.FacultyResponse{}, err
	}

	created, err := s.facultyRepo.Create(ctx, faculty.Faculty{
		Name:         req.Name,
		UniversityID: shared.NilIfEmpty(req.UniversityID),
		Location:     shared.NilIfEmpty(req.Location),
		ContactEmail: shared.NilIfEmpty(req.ContactEmail),
	})
	if err != nil {
		return faculty.FacultyResponse{}, storeError(err, faculty.ErrUniversityNotFound, nil)
	}

	s.publish(tableFaculties, sse.ActionCreated, created.ID)
	return faculty.ToResponse(created), nil
}

func (s *organizationServiceImpl) GetFaculty(ctx context.Context, id string) (faculty.FacultyResponse, error) {
	entity, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return faculty.FacultyResponse{}, err
	}
	return faculty.ToResponse(entity), nil
}

func (s *organizationServiceImpl) ListFaculties(ctx context.Context, filter faculty.FacultyFilter) ([]faculty.FacultyResponse, *shared.PageInfo, error) {
	filter.Normalize()

	faculties, total, err := s.facultyRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]faculty.FacultyResponse, 0, len(faculties))
	for _, f := range faculties {
		responses = append(responses, faculty.ToResponse(f))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

func (s *organizationServiceImpl) UpdateFaculty(ctx context.Context, req faculty.UpdateFacultyRequest) (faculty.FacultyResponse, error) {
	if err := req.Validate(); err != nil {
		return faculty.FacultyResponse{}, err
	}

	if err := s.facultyRepo.Update(ctx, req); err != nil {
		return faculty.FacultyResponse{}, storeError(err, faculty.ErrUniversityNotFound, nil)
	}

	s.publish(tableFaculties, sse.ActionUpdated, req.ID)
	return s.GetFaculty(ctx, req.ID)
}

func (s *organizationServiceImpl) DeleteFaculty(ctx context.Context, id string) error {
	if err := s.facultyRepo.Delete(ctx, id); err != nil {
		return storeError(err, nil, faculty.ErrFacultyInUse)
	}

	s.publish(tableFaculties, sse.ActionDeleted, id)
	return nil
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *organizationServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:         req.Name,
		FacultyID:    shared.NilIfEmpty(req.FacultyID),
		ManagerID:    shared.NilIfEmpty(req.ManagerID),
		Location:     shared.NilIfEmpty(req.Location),
		ContactEmail: shared.NilIfEmpty(req.ContactEmail),
	})
	if err != nil {
		return department.DepartmentResponse{}, storeError(err, department.ErrInvalidReference, nil)
	}

	s.publish(tableDepartments, sse.ActionCreated, created.ID)
	return department.ToResponse(created), nil
}

func (s *organizationServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	entity, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(entity), nil
}

func (s *organizationServiceImpl) ListDepartments(ctx context.Context, filter department.DepartmentFilter) ([]department.DepartmentResponse, *shared.PageInfo, error) {
	filter.Normalize()

	departments, total, err := s.departmentRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.ToResponse(d))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

func (s *organizationServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.departmentRepo.Update(ctx, req); err != nil {
		return department.DepartmentResponse{}, storeError(err, department.ErrInvalidReference, nil)
	}

	s.publish(tableDepartments, sse.ActionUpdated, req.ID)
	return s.GetDepartment(ctx, req.ID)
}

func (s *organizationServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return storeError(err, nil, department.ErrDepartmentInUse)
	}

	s.publish(tableDepartments, sse.ActionDeleted, id)
	return nil
}
