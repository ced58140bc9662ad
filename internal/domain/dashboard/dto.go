package dashboard

import (
	"github.com/giu-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/job"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/department"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/appraisal"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/cycle"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/training"
)

// Snapshot is the full content of the six tables the dashboard summarizes.
type Snapshot struct {
	Employees   []employee.Employee
	Jobs        []job.Job
	Trainings   []training.Program
	Appraisals  []appraisal.Appraisal
	Departments []department.Department
	Cycles      []cycle.Cycle
}

// Stats is the dashboard summary. It is derived from a Snapshot on every
// request and never stored.
type Stats struct {
	TotalEmployees    int    `json:"total_employees"`
	ActiveEmployees   int    `json:"active_employees"`
	ActiveJobs        int    `json:"active_jobs"`
	TrainingPrograms  int    `json:"training_programs"`
	OngoingTraining   int    `json:"ongoing_training"`
	CompletedTraining int    `json:"completed_training"`
	PendingAppraisals int    `json:"pending_appraisals"`
	Departments       int    `json:"departments"`
	ActiveCycles      int    `json:"active_cycles"`
	AvgPerformance    string `json:"avg_performance"`
}
