package dashboard

import (
	"context"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/dashboard"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/job"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/department"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/appraisal"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/cycle"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/training"
	"golang.org/x/sync/errgroup"
)

type dashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	jobRepo        job.JobRepository
	programRepo    training.ProgramRepository
	appraisalRepo  appraisal.AppraisalRepository
	departmentRepo department.DepartmentRepository
	cycleRepo      cycle.CycleRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	jobRepo job.JobRepository,
	programRepo training.ProgramRepository,
	appraisalRepo appraisal.AppraisalRepository,
	departmentRepo department.DepartmentRepository,
	cycleRepo cycle.CycleRepository,
) dashboard.DashboardService {
	return &dashboardServiceImpl{
		employeeRepo:   employeeRepo,
		jobRepo:        jobRepo,
		programRepo:    programRepo,
		appraisalRepo:  appraisalRepo,
		departmentRepo: departmentRepo,
		cycleRepo:      cycleRepo,
	}
}

// GetDashboard loads the six collections concurrently and aggregates them.
// If any load fails nothing is aggregated and the first error is returned.
func (s *dashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.Stats, error) {
	var snap dashboard.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, _, err := s.employeeRepo.List(gctx, employee.EmployeeFilter{})
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		snap.Employees = rows
		return nil
	})

	g.Go(func() error {
		rows, _, err := s.jobRepo.List(gctx, job.JobFilter{})
		if err != nil {
			return fmt.Errorf("failed to load jobs: %w", err)
		}
		snap.Jobs = rows
		return nil
	})

	g.Go(func() error {
		rows, _, err := s.programRepo.List(gctx, training.ProgramFilter{})
		if err != nil {
			return fmt.Errorf("failed to load training programs: %w", err)
		}
		snap.Trainings = rows
		return nil
	})

	g.Go(func() error {
		rows, _, err := s.appraisalRepo.List(gctx, appraisal.AppraisalFilter{})
		if err != nil {
			return fmt.Errorf("failed to load appraisals: %w", err)
		}
		snap.Appraisals = rows
		return nil
	})

	g.Go(func() error {
		rows, _, err := s.departmentRepo.List(gctx, department.DepartmentFilter{})
		if err != nil {
			return fmt.Errorf("failed to load departments: %w", err)
		}
		snap.Departments = rows
		return nil
	})

	g.Go(func() error {
		rows, _, err := s.cycleRepo.List(gctx, cycle.CycleFilter{})
		if err != nil {
			return fmt.Errorf("failed to load performance cycles: %w", err)
		}
		snap.Cycles = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.Stats{}, err
	}

	return Aggregate(snap), nil
}
