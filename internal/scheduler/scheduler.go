// Package scheduler runs the periodic maintenance jobs: the overdue invoice
// sweep, idle workspace eviction and activity journal retention.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/config"
	"github.com/smartwork/dashboard/internal/sessions"
	"github.com/smartwork/dashboard/internal/store"
)

// Job names, used in logs and metrics.
const (
	JobOverdueSweep     = "overdue_sweep"
	JobWorkspaceCleanup = "workspace_cleanup"
	JobActivityCleanup  = "activity_cleanup"
)

// WorkspaceCleanupSchedule is fixed; only the idle timeout is configurable.
const WorkspaceCleanupSchedule = "*/10 * * * *"

// PreviewMaxAge is how long an unconfirmed import preview is kept.
const PreviewMaxAge = 30 * time.Minute

// Sweeper marks overdue invoices of one workspace.
type Sweeper interface {
	SweepOverdue(ws *store.Workspace) []string
}

// Journal is the retention side of the activity journal.
type Journal interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
	DeleteWorkspaceEvents(workspaceID string) (int64, error)
}

// Recorder receives job outcomes. *metrics.Metrics satisfies it.
type Recorder interface {
	ObserveJob(job string, err error)
	SetWorkspaces(n int)
}

type job struct {
	name     string
	schedule string
	run      func()
}

type Scheduler struct {
	cfg       config.Scheduler
	retention time.Duration
	registry  *sessions.Registry
	sweeper   Sweeper
	journal   Journal
	recorder  Recorder
	logger    *zap.Logger

	cron      *cron.Cron
	entries   map[string]cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

// New creates a scheduler. journal and recorder may be nil.
func New(cfg config.Scheduler, retentionDays int, registry *sessions.Registry, sweeper Sweeper, journal Journal, recorder Recorder, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cfg:       cfg,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		registry:  registry,
		sweeper:   sweeper,
		journal:   journal,
		recorder:  recorder,
		logger:    logger,
		cron:      cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
		entries:   make(map[string]cron.EntryID),
	}
}

// ValidateSchedule checks a 5-field cron expression.
func ValidateSchedule(schedule string) error {
	_, err := cron.ParseStandard(schedule)
	return err
}

// Start registers the jobs and starts the cron loop. It stops when ctx is
// cancelled. A disabled scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if !s.cfg.Enabled {
		s.logger.Info("scheduler disabled")
		return nil
	}

	jobs := []job{
		{JobOverdueSweep, s.cfg.OverdueSweepSchedule, func() { s.RunOverdueSweep() }},
		{JobWorkspaceCleanup, WorkspaceCleanupSchedule, func() { s.RunWorkspaceCleanup() }},
	}
	if s.journal != nil && s.retention > 0 {
		jobs = append(jobs, job{JobActivityCleanup, s.cfg.ActivityCleanupSchedule, func() { _ = s.RunActivityCleanup() }})
	}

	for _, j := range jobs {
		if err := ValidateSchedule(j.schedule); err != nil {
			return fmt.Errorf("invalid cron schedule '%s' for %s: %w", j.schedule, j.name, err)
		}
		id, err := s.cron.AddFunc(j.schedule, j.run)
		if err != nil {
			return fmt.Errorf("failed to schedule %s: %w", j.name, err)
		}
		s.entries[j.name] = id
		s.logger.Info("job scheduled", zap.String("job", j.name), zap.String("schedule", j.schedule))
	}

	s.cron.Start()
	s.isRunning = true

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop waits for running jobs and stops the cron loop.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	for name, id := range s.entries {
		s.cron.Remove(id)
		delete(s.entries, name)
	}
	s.isRunning = false
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the named job runs next, or nil when it is not scheduled.
func (s *Scheduler) NextRun(name string) *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.entries[name]
	if !ok || !s.isRunning {
		return nil
	}
	next := s.cron.Entry(id).Next
	return &next
}

// RunOverdueSweep sweeps every live workspace and returns how many invoices
// became overdue.
func (s *Scheduler) RunOverdueSweep() int {
	start := time.Now()
	total := 0
	s.registry.Each(func(ws *store.Workspace) {
		total += len(s.sweeper.SweepOverdue(ws))
	})
	s.observe(JobOverdueSweep, nil)
	s.logger.Info("overdue sweep done",
		zap.Int("workspaces", s.registry.Len()),
		zap.Int("invoices", total),
		zap.Duration("duration", time.Since(start)))
	return total
}

// RunWorkspaceCleanup cancels stale previews, then evicts idle workspaces
// and drops their journal. It returns the evicted ids.
func (s *Scheduler) RunWorkspaceCleanup() []string {
	expired := s.registry.ExpirePreviews(PreviewMaxAge)

	var evicted []string
	if s.cfg.WorkspaceIdleTimeout > 0 {
		evicted = s.registry.EvictIdle(s.cfg.WorkspaceIdleTimeout)
	}

	var firstErr error
	if s.journal != nil {
		for _, id := range evicted {
			if _, err := s.journal.DeleteWorkspaceEvents(id); err != nil {
				s.logger.Warn("failed to drop workspace activity", zap.String("workspace", id), zap.Error(err))
				if firstErr == nil {
					firstErr = err
				}
			}
		}
	}

	s.observe(JobWorkspaceCleanup, firstErr)
	if s.recorder != nil {
		s.recorder.SetWorkspaces(s.registry.Len())
	}
	if expired > 0 || len(evicted) > 0 {
		s.logger.Info("workspace cleanup done",
			zap.Int("previews_expired", expired),
			zap.Strings("evicted", evicted))
	}
	return evicted
}

// RunActivityCleanup deletes journal entries past the retention period.
func (s *Scheduler) RunActivityCleanup() error {
	if s.journal == nil {
		return nil
	}
	deleted, err := s.journal.DeleteOldEvents(s.retention)
	s.observe(JobActivityCleanup, err)
	if err != nil {
		s.logger.Error("activity cleanup failed", zap.Error(err))
		return fmt.Errorf("failed to delete old activity: %w", err)
	}
	s.logger.Info("activity cleanup done", zap.Int64("deleted", deleted))
	return nil
}

func (s *Scheduler) observe(name string, err error) {
	if s.recorder != nil {
		s.recorder.ObserveJob(name, err)
	}
}
