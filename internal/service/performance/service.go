package performance

import (
	"context"
	"strings"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/appraisal"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/cycle"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/kpi"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/sse"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

type PerformanceService interface {
	// Cycle operations
	CreateCycle(ctx context.Context, req cycle.CreateCycleRequest) (cycle.CycleResponse, error)
	GetCycle(ctx context.Context, id string) (cycle.CycleResponse, error)
	ListCycles(ctx context.Context, filter cycle.CycleFilter) ([]cycle.CycleResponse, *shared.PageInfo, error)
	UpdateCycle(ctx context.Context, req cycle.UpdateCycleRequest) (cycle.CycleResponse, error)
	DeleteCycle(ctx context.Context, id string) error

	// Appraisal operations
	CreateAppraisal(ctx context.Context, req appraisal.CreateAppraisalRequest) (appraisal.AppraisalResponse, error)
	GetAppraisal(ctx context.Context, id string) (appraisal.AppraisalResponse, error)
	ListAppraisals(ctx context.Context, filter appraisal.AppraisalFilter) ([]appraisal.AppraisalResponse, *shared.PageInfo, error)
	UpdateAppraisal(ctx context.Context, req appraisal.UpdateAppraisalRequest) (appraisal.AppraisalResponse, error)
	DeleteAppraisal(ctx context.Context, id string) error

	// KPI score operations
	CreateScore(ctx context.Context, req kpi.CreateScoreRequest) (kpi.ScoreResponse, error)
	GetScore(ctx context.Context, id string) (kpi.ScoreResponse, error)
	ListScores(ctx context.Context, filter kpi.ScoreFilter) ([]kpi.ScoreResponse, *shared.PageInfo, error)
	UpdateScore(ctx context.Context, req kpi.UpdateScoreRequest) (kpi.ScoreResponse, error)
	DeleteScore(ctx context.Context, id string) error

	// Scorecards
	Scorecards(ctx context.Context, filter kpi.ScorecardFilter) ([]kpi.Scorecard, error)
	EmployeeScorecard(ctx context.Context, employeeID string, cycleID *string) (kpi.Scorecard, error)
}

const (
	tableCycles     = "performance_cycles"
	tableAppraisals = "appraisals"
	tableScores     = "kpi_scores"
)

type performanceServiceImpl struct {
	cycleRepo     cycle.CycleRepository
	appraisalRepo appraisal.AppraisalRepository
	scoreRepo     kpi.ScoreRepository
	tx            shared.Transactor
	events        sse.Publisher
}

func NewPerformanceService(
	cycleRepo cycle.CycleRepository,
	appraisalRepo appraisal.AppraisalRepository,
	scoreRepo kpi.ScoreRepository,
	tx shared.Transactor,
	events sse.Publisher,
) PerformanceService {
	return &performanceServiceImpl{
		cycleRepo:     cycleRepo,
		appraisalRepo: appraisalRepo,
		scoreRepo:     scoreRepo,
		tx:            tx,
		events:        events,
	}
}

func (s *performanceServiceImpl) publish(table, action, id string) {
	s.events.Publish(sse.Event{Table: table, Action: action, ID: id})
}

func referenceError(err, invalidRef error) error {
	if database.IsForeignKeyViolation(err) {
		return invalidRef
	}
	return err
}

// ==================== CYCLE OPERATIONS ====================

func (s *performanceServiceImpl) CreateCycle(ctx context.Context, req cycle.CreateCycleRequest) (cycle.CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return cycle.CycleResponse{}, err
	}

	status := cycle.Status(req.Status)
	if status == "" {
		status = cycle.StatusDraft
	}

	created, err := s.cycleRepo.Create(ctx, cycle.Cycle{
		Name:        strings.TrimSpace(req.Name),
		StartDate:   shared.ParseDate(req.StartDate),
		EndDate:     shared.ParseDate(req.EndDate),
		Status:      status,
		Description: shared.NilIfEmpty(req.Description),
	})
	if err != nil {
		return cycle.CycleResponse{}, err
	}

	s.publish(tableCycles, sse.ActionCreated, created.ID)
	return cycle.ToResponse(created), nil
}

func (s *performanceServiceImpl) GetCycle(ctx context.Context, id string) (cycle.CycleResponse, error) {
	c, err := s.cycleRepo.GetByID(ctx, id)
	if err != nil {
		return cycle.CycleResponse{}, err
	}
	return cycle.ToResponse(c), nil
}

func (s *performanceServiceImpl) ListCycles(ctx context.Context, filter cycle.CycleFilter) ([]cycle.CycleResponse, *shared.PageInfo, error) {
	filter.Normalize()

	cycles, total, err := s.cycleRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]cycle.CycleResponse, 0, len(cycles))
	for _, c := range cycles {
		responses = append(responses, cycle.ToResponse(c))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

func (s *performanceServiceImpl) UpdateCycle(ctx context.Context, req cycle.UpdateCycleRequest) (cycle.CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return cycle.CycleResponse{}, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.cycleRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		start := shared.FormatDate(current.StartDate)
		if req.StartDate != nil {
			start = *req.StartDate
		}
		end := shared.FormatDate(current.EndDate)
		if req.EndDate != nil {
			end = *req.EndDate
		}

		var errs validator.ValidationErrors
		validator.DateNotBefore(&errs, "end_date", start, end)
		if err := errs.OrNil(); err != nil {
			return err
		}

		return s.cycleRepo.Update(ctx, req)
	})
	if err != nil {
		return cycle.CycleResponse{}, err
	}

	s.publish(tableCycles, sse.ActionUpdated, req.ID)
	return s.GetCycle(ctx, req.ID)
}

func (s *performanceServiceImpl) DeleteCycle(ctx context.Context, id string) error {
	if err := s.cycleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(tableCycles, sse.ActionDeleted, id)
	return nil
}

// ==================== APPRAISAL OPERATIONS ====================

func (s *performanceServiceImpl) CreateAppraisal(ctx context.Context, req appraisal.CreateAppraisalRequest) (appraisal.AppraisalResponse, error) {
	if err := req.Validate(); err != nil {
		return appraisal.AppraisalResponse{}, err
	}

	status := appraisal.Status(req.Status)
	if status == "" {
		status = appraisal.StatusPending
	}

	created, err := s.appraisalRepo.Create(ctx, appraisal.Appraisal{
		EmployeeID: req.EmployeeID,
		CycleID:    req.CycleID,
		ReviewerID: shared.NilIfEmpty(req.ReviewerID),
		Score:      req.Score,
		Comments:   shared.NilIfEmpty(req.Comments),
		Status:     status,
	})
	if err != nil {
		return appraisal.AppraisalResponse{}, referenceError(err, appraisal.ErrInvalidReference)
	}

	s.publish(tableAppraisals, sse.ActionCreated, created.ID)
	return appraisal.ToResponse(created), nil
}

func (s *performanceServiceImpl) GetAppraisal(ctx context.Context, id string) (appraisal.AppraisalResponse, error) {
	a, err := s.appraisalRepo.GetByID(ctx, id)
	if err != nil {
		return appraisal.AppraisalResponse{}, err
	}
	return appraisal.ToResponse(a), nil
}

func (s *performanceServiceImpl) ListAppraisals(ctx context.Context, filter appraisal.AppraisalFilter) ([]appraisal.AppraisalResponse, *shared.PageInfo, error) {
	filter.Normalize()

	appraisals, total, err := s.appraisalRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]appraisal.AppraisalResponse, 0, len(appraisals))
	for _, a := range appraisals {
		responses = append(responses, appraisal.ToResponse(a))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

func (s *performanceServiceImpl) UpdateAppraisal(ctx context.Context, req appraisal.UpdateAppraisalRequest) (appraisal.AppraisalResponse, error) {
	if err := req.Validate(); err != nil {
		return appraisal.AppraisalResponse{}, err
	}

	if err := s.appraisalRepo.Update(ctx, req); err != nil {
		return appraisal.AppraisalResponse{}, referenceError(err, appraisal.ErrInvalidReference)
	}

	s.publish(tableAppraisals, sse.ActionUpdated, req.ID)
	return s.GetAppraisal(ctx, req.ID)
}

func (s *performanceServiceImpl) DeleteAppraisal(ctx context.Context, id string) error {
	if err := s.appraisalRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(tableAppraisals, sse.ActionDeleted, id)
	return nil
}

// ==================== KPI SCORE OPERATIONS ====================

func (s *performanceServiceImpl) CreateScore(ctx context.Context, req kpi.CreateScoreRequest) (kpi.ScoreResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.ScoreResponse{}, err
	}

	created, err := s.scoreRepo.Create(ctx, kpi.Score{
		EmployeeID: req.EmployeeID,
		CycleID:    req.CycleID,
		KPIName:    strings.TrimSpace(req.KPIName),
		Target:     *req.Target,
		Achieved:   *req.Achieved,
		Weight:     *req.Weight,
	})
	if err != nil {
		return kpi.ScoreResponse{}, referenceError(err, kpi.ErrInvalidReference)
	}

	s.publish(tableScores, sse.ActionCreated, created.ID)
	return kpi.ToResponse(created), nil
}

func (s *performanceServiceImpl) GetScore(ctx context.Context, id string) (kpi.ScoreResponse, error) {
	score, err := s.scoreRepo.GetByID(ctx, id)
	if err != nil {
		return kpi.ScoreResponse{}, err
	}
	return kpi.ToResponse(score), nil
}

func (s *performanceServiceImpl) ListScores(ctx context.Context, filter kpi.ScoreFilter) ([]kpi.ScoreResponse, *shared.PageInfo, error) {
	filter.Normalize()

	scores, total, err := s.scoreRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]kpi.ScoreResponse, 0, len(scores))
	for _, score := range scores {
		responses = append(responses, kpi.ToResponse(score))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

func (s *performanceServiceImpl) UpdateScore(ctx context.Context, req kpi.UpdateScoreRequest) (kpi.ScoreResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.ScoreResponse{}, err
	}

	if err := s.scoreRepo.Update(ctx, req); err != nil {
		return kpi.ScoreResponse{}, referenceError(err, kpi.ErrInvalidReference)
	}

	s.publish(tableScores, sse.ActionUpdated, req.ID)
	return s.GetScore(ctx, req.ID)
}

func (s *performanceServiceImpl) DeleteScore(ctx context.Context, id string) error {
	if err := s.scoreRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(tableScores, sse.ActionDeleted, id)
	return nil
}

// ==================== SCORECARD OPERATIONS ====================

// Scorecards computes one weighted scorecard per employee over every KPI
// score matching the filter.
func (s *performanceServiceImpl) Scorecards(ctx context.Context, filter kpi.ScorecardFilter) ([]kpi.Scorecard, error) {
	scores, _, err := s.scoreRepo.List(ctx, kpi.ScoreFilter{
		EmployeeID: shared.NilIfEmpty(filter.EmployeeID),
		CycleID:    shared.NilIfEmpty(filter.CycleID),
	})
	if err != nil {
		return nil, err
	}
	return BuildScorecards(scores), nil
}

func (s *performanceServiceImpl) EmployeeScorecard(ctx context.Context, employeeID string, cycleID *string) (kpi.Scorecard, error) {
	cards, err := s.Scorecards(ctx, kpi.ScorecardFilter{EmployeeID: &employeeID, CycleID: cycleID})
	if err != nil {
		return kpi.Scorecard{}, err
	}
	if len(cards) == 0 {
		return kpi.Scorecard{}, kpi.ErrScorecardNotFound
	}
	return cards[0], nil
}
