package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/contract"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/training"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/sse"
)

// LifecycleJobs moves date-driven records to the status their dates imply.
type LifecycleJobs struct {
	contractRepo contract.ContractRepository
	programRepo  training.ProgramRepository
	publisher    sse.Publisher
	now          func() time.Time
}

func NewLifecycleJobs(contractRepo contract.ContractRepository, programRepo training.ProgramRepository, publisher sse.Publisher) *LifecycleJobs {
	return &LifecycleJobs{
		contractRepo: contractRepo,
		programRepo:  programRepo,
		publisher:    publisher,
		now:          time.Now,
	}
}

func (j *LifecycleJobs) RegisterJobs(scheduler *Scheduler, contractInterval, trainingInterval time.Duration) {
	scheduler.AddJob("expire_ended_contracts", contractInterval, j.ExpireEndedContracts)
	scheduler.AddJob("sync_training_statuses", trainingInterval, j.SyncTrainingStatuses)
}

// ExpireEndedContracts marks active contracts past their end date as expired.
func (j *LifecycleJobs) ExpireEndedContracts(ctx context.Context) error {
	ids, err := j.contractRepo.ExpireEnded(ctx, j.today())
	if err != nil {
		return fmt.Errorf("failed to expire contracts: %w", err)
	}
	j.announce("contracts", ids)
	if len(ids) > 0 {
		slog.Info("Cron: contracts expired", "count", len(ids))
	}
	return nil
}

// SyncTrainingStatuses moves programs between upcoming, ongoing and completed.
func (j *LifecycleJobs) SyncTrainingStatuses(ctx context.Context) error {
	ids, err := j.programRepo.SyncStatuses(ctx, j.today())
	if err != nil {
		return fmt.Errorf("failed to sync training statuses: %w", err)
	}
	j.announce("training_programs", ids)
	if len(ids) > 0 {
		slog.Info("Cron: training statuses updated", "count", len(ids))
	}
	return nil
}

func (j *LifecycleJobs) today() time.Time {
	now := j.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (j *LifecycleJobs) announce(table string, ids []string) {
	for _, id := range ids {
		j.publisher.Publish(sse.Event{Table: table, Action: sse.ActionUpdated, ID: id})
	}
}
