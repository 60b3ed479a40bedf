// Package jobs provides the scheduled background tasks of the order board.
//
// Jobs are cron-driven via github.com/robfig/cron/v3 and managed through
// JobManager, which starts and stops them as a group:
//
//	jobManager := jobs.NewJobManager(applyMappingsHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"flowtrack/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	areaReassignmentJob *AreaReassignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	applyMappingsHandler commands.ApplyStatusMappingsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		areaReassignmentJob: NewAreaReassignmentJob(applyMappingsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.areaReassignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start area reassignment job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.areaReassignmentJob.Stop()
}
