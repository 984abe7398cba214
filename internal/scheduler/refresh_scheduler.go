package scheduler

import (
	"context"
	"fmt"
	"time"

	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// refreshTimeout bounds one scheduled sheet fetch
const refreshTimeout = 60 * time.Second

// RefreshScheduler periodically reloads the dataset from the sheet so the
// in-memory view tracks edits made directly in the spreadsheet
type RefreshScheduler struct {
	syncService    service.SyncService
	gateway        gateway.SheetGateway
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
}

// NewRefreshScheduler creates a new refresh scheduler
func NewRefreshScheduler(syncService service.SyncService, gw gateway.SheetGateway, logger *logger.Logger, cronExpression string) *RefreshScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &RefreshScheduler{
		syncService:    syncService,
		gateway:        gw,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
	}
}

// Start initializes and starts the refresh job
func (s *RefreshScheduler) Start() error {
	s.logger.Info("Starting refresh scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling dataset refresh job")
	_, err := s.cron.AddFunc(s.cronExpression, s.refreshDataset)
	if err != nil {
		return fmt.Errorf("failed to schedule dataset refresh job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Refresh scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	s.logger.Info("Stopping refresh scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Refresh scheduler stopped successfully")
}

// refreshDataset is the scheduled job that reloads the dataset
func (s *RefreshScheduler) refreshDataset() {
	runID := uuid.New().String()

	// sample mode has nothing to refresh; a reload would clobber local edits
	if !s.gateway.Configured() {
		s.logger.WithField("run_id", runID).Debug("Sheet gateway not configured, skipping refresh")
		return
	}

	s.logger.WithField("run_id", runID).Info("Starting scheduled dataset refresh")

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	result, err := s.syncService.LoadAll(ctx)
	if err != nil {
		s.logger.WithField("run_id", runID).WithField("error", err).Error("Scheduled dataset refresh failed, keeping previous data")
		return
	}

	s.logger.WithField("run_id", runID).WithField("source", result.Source).WithField("counts", result.Counts).Info("Scheduled dataset refresh completed")
}
