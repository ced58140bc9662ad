package training

import (
	"context"
	"strings"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/training"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/sse"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
)

const tablePrograms = "training_programs"

type TrainingService interface {
	CreateProgram(ctx context.Context, req training.CreateProgramRequest) (training.ProgramResponse, error)
	GetProgram(ctx context.Context, id string) (training.ProgramResponse, error)
	ListPrograms(ctx context.Context, filter training.ProgramFilter) ([]training.ProgramResponse, *shared.PageInfo, error)
	UpdateProgram(ctx context.Context, req training.UpdateProgramRequest) (training.ProgramResponse, error)
	DeleteProgram(ctx context.Context, id string) error
}

type trainingServiceImpl struct {
	programRepo training.ProgramRepository
	tx          shared.Transactor
	events      sse.Publisher
}

func NewTrainingService(programRepo training.ProgramRepository, tx shared.Transactor, events sse.Publisher) TrainingService {
	return &trainingServiceImpl{
		programRepo: programRepo,
		tx:          tx,
		events:      events,
	}
}

func (s *trainingServiceImpl) CreateProgram(ctx context.Context, req training.CreateProgramRequest) (training.ProgramResponse, error) {
	if err := req.Validate(); err != nil {
		return training.ProgramResponse{}, err
	}

	status := training.Status(req.Status)
	if status == "" {
		status = training.StatusUpcoming
	}

	created, err := s.programRepo.Create(ctx, training.Program{
		Name:        strings.TrimSpace(req.Name),
		Description: shared.NilIfEmpty(req.Description),
		StartDate:   shared.ParseDate(req.StartDate),
		EndDate:     shared.ParseDate(req.EndDate),
		Status:      status,
		Capacity:    req.Capacity,
		Enrolled:    req.Enrolled,
	})
	if err != nil {
		return training.ProgramResponse{}, err
	}

	s.events.Publish(sse.Event{Table: tablePrograms, Action: sse.ActionCreated, ID: created.ID})
	return training.ToResponse(created), nil
}

func (s *trainingServiceImpl) GetProgram(ctx context.Context, id string) (training.ProgramResponse, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return training.ProgramResponse{}, err
	}
	return training.ToResponse(program), nil
}

func (s *trainingServiceImpl) ListPrograms(ctx context.Context, filter training.ProgramFilter) ([]training.ProgramResponse, *shared.PageInfo, error) {
	filter.Normalize()

	programs, total, err := s.programRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]training.ProgramResponse, 0, len(programs))
	for _, p := range programs {
		responses = append(responses, training.ToResponse(p))
	}
	return responses, shared.NewPageInfo(filter.ListParams, total), nil
}

// UpdateProgram re-checks the date range and seat count against the record
// as it will look after the patch is applied.
func (s *trainingServiceImpl) UpdateProgram(ctx context.Context, req training.UpdateProgramRequest) (training.ProgramResponse, error) {
	if err := req.Validate(); err != nil {
		return training.ProgramResponse{}, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.programRepo.GetByID(ctx, req.ID)
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
		capacity := current.Capacity
		if req.Capacity != nil {
			capacity = *req.Capacity
		}
		enrolled := current.Enrolled
		if req.Enrolled != nil {
			enrolled = *req.Enrolled
		}

		var errs validator.ValidationErrors
		validator.DateNotBefore(&errs, "end_date", start, end)
		training.ValidateEnrollment(&errs, capacity, enrolled)
		if err := errs.OrNil(); err != nil {
			return err
		}

		return s.programRepo.Update(ctx, req)
	})
	if err != nil {
		return training.ProgramResponse{}, err
	}

	s.events.Publish(sse.Event{Table: tablePrograms, Action: sse.ActionUpdated, ID: req.ID})
	return s.GetProgram(ctx, req.ID)
}

func (s *trainingServiceImpl) DeleteProgram(ctx context.Context, id string) error {
	if err := s.programRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Publish(sse.Event{Table: tablePrograms, Action: sse.ActionDeleted, ID: id})
	return nil
}
