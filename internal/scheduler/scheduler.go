package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/logger"

	"github.com/ewhettey/church-attendance/internal/domain"
)

type offlineSyncer interface {
	Sync(ctx context.Context) (domain.SyncResult, error)
}

type eventDeactivator interface {
	DeactivateElapsed(ctx context.Context, now time.Time) (int, error)
}

// Scheduler drains the offline queue on a fixed interval and deactivates
// elapsed events on a cron schedule.
type Scheduler struct {
	syncer         offlineSyncer
	deactivator    eventDeactivator
	syncInterval   time.Duration
	deactivateSpec string
	loc            *time.Location
	logger         logger.Logger
	now            func() time.Time
}

func New(
	syncer offlineSyncer,
	deactivator eventDeactivator,
	syncInterval time.Duration,
	deactivateSpec string,
	loc *time.Location,
	logger logger.Logger,
) (*Scheduler, error) {
	if syncInterval <= 0 {
		return nil, fmt.Errorf("sync interval must be positive, got %s", syncInterval)
	}
	if _, err := cron.ParseStandard(deactivateSpec); err != nil {
		return nil, fmt.Errorf("parse deactivate schedule %q: %w", deactivateSpec, err)
	}

	if loc == nil {
		loc = time.Local
	}

	return &Scheduler{
		syncer:         syncer,
		deactivator:    deactivator,
		syncInterval:   syncInterval,
		deactivateSpec: deactivateSpec,
		loc:            loc,
		logger:         logger,
		now:            time.Now,
	}, nil
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	c, err := s.newCron(ctx)
	if err != nil {
		s.logger.Error("failed to schedule event deactivation",
			logger.String("error", err.Error()),
		)
	}
	c.Start()

	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("sync_interval", s.syncInterval),
		logger.String("deactivate_cron", s.deactivateSpec),
		logger.String("timezone", s.loc.String()),
	)

	for {
		select {
		case <-ctx.Done():
			<-c.Stop().Done()
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.sync(ctx)
		}
	}
}

// newCron evaluates the deactivation schedule in the church's timezone.
func (s *Scheduler) newCron(ctx context.Context) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(s.loc))
	if _, err := c.AddFunc(s.deactivateSpec, func() { s.deactivate(ctx) }); err != nil {
		return c, err
	}
	return c, nil
}

func (s *Scheduler) sync(ctx context.Context) {
	if _, err := s.syncer.Sync(ctx); err != nil {
		s.logger.Error("offline sync failed",
			logger.String("error", err.Error()),
		)
	}
}

func (s *Scheduler) deactivate(ctx context.Context) {
	n, err := s.deactivator.DeactivateElapsed(ctx, s.now())
	if err != nil {
		s.logger.Error("failed to deactivate elapsed events",
			logger.String("error", err.Error()),
		)
		return
	}

	if n > 0 {
		s.logger.Info("elapsed events deactivated", logger.Int("count", n))
	}
}
