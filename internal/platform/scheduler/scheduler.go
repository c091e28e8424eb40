package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/riskibarqy/gaming-league/internal/platform/logging"
)

var (
	ErrEmptyJobName    = errors.New("job name is required")
	ErrInvalidInterval = errors.New("job interval must be > 0")
)

// Service wraps a gocron scheduler for background league jobs.
type Service struct {
	scheduler gocron.Scheduler
	logger    *logging.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	stopOnce  sync.Once
	stopErr   error
}

func New(logger *logging.Logger) (*Service, error) {
	if logger == nil {
		logger = logging.Default()
	}

	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("scheduler job panicked",
						"job_id", jobID.String(),
						"job_name", jobName,
						"panic", recoverData,
					)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		scheduler: sched,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// AddIntervalJob registers task to run every interval. Overlapping runs
// of the same job are skipped.
func (s *Service) AddIntervalJob(name string, every time.Duration, task func(context.Context) error) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyJobName
	}
	if every <= 0 {
		return ErrInvalidInterval
	}

	jobLogger := s.logger.With("job_name", name, "every", every.String())
	wrapped := func() {
		started := time.Now()
		jobLogger.Debug("scheduler job started")
		if err := task(s.ctx); err != nil {
			jobLogger.Error("scheduler job failed", "error", err, "duration_ms", time.Since(started).Milliseconds())
			return
		}
		jobLogger.Debug("scheduler job completed", "duration_ms", time.Since(started).Milliseconds())
	}

	if _, err := s.scheduler.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(wrapped),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		jobLogger.Error("failed to register scheduler job", "error", err)
		return err
	}

	jobLogger.Info("scheduler job registered")
	return nil
}

func (s *Service) Start() {
	s.logger.Info("scheduler starting", "jobs", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

// Stop cancels running jobs and shuts the scheduler down. Safe to call twice.
func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		s.logger.Info("scheduler stopping")
		s.cancel()
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}
