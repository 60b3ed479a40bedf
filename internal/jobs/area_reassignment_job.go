package jobs

import (
	"context"
	"log/slog"

	"flowtrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// areaReassignmentSchedule runs the pass once a minute. Upstream snapshots
// arrive far less often, so a minute keeps the board fresh without hammering
// the order table.
const areaReassignmentSchedule = "0 * * * * *"

// AreaReassignmentJob periodically reruns the assignment pass so that
// system-tracked orders follow mapping table edits and upstream status changes.
type AreaReassignmentJob struct {
	handler commands.ApplyStatusMappingsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAreaReassignmentJob creates the periodic assignment pass job.
func NewAreaReassignmentJob(
	handler commands.ApplyStatusMappingsCommandHandler,
	logger *slog.Logger,
) *AreaReassignmentJob {
	return &AreaReassignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "area_reassignment_job"),
	}
}

// Start schedules the assignment pass to run once a minute.
func (j *AreaReassignmentJob) Start() error {
	_, err := j.cron.AddFunc(areaReassignmentSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewApplyStatusMappingsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Area reassignment pass failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Area reassignment job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *AreaReassignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Area reassignment job stopped")
}
