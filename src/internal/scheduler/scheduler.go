package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/investlab/investment-gateway/src/internal/commons"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

type TaskFn func(ctx context.Context) error

type Scheduler struct {
	scheduler gocron.Scheduler
}

func New() (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{scheduler: s}, nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

// NewIntervalJob runs fn every interval; a run still in progress delays the next one.
func (s *Scheduler) NewIntervalJob(name string, fn TaskFn, interval time.Duration, startImmediately bool) error {
	opts := []gocron.JobOption{
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if startImmediately {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	if _, err := s.scheduler.NewJob(gocron.DurationJob(interval), gocron.NewTask(taskWithRecover(fn, name)), opts...); err != nil {
		return fmt.Errorf("create job %s: %w", name, err)
	}
	return nil
}

func taskWithRecover(fn TaskFn, jobName string) func(ctx context.Context) {
	return func(ctx context.Context) {
		ctx = commons.ContextWithRequestID(ctx, "")

		defer func() {
			if r := recover(); r != nil {
				logger.Error(ctx, "scheduler job panic recovered", fmt.Errorf("%v", r), logger.Fields{
					"jobName":    jobName,
					"stacktrace": string(debug.Stack()),
				})
			}
		}()

		logger.Debug(ctx, "scheduler job start", logger.Fields{"jobName": jobName})

		if err := fn(ctx); err != nil {
			logger.Error(ctx, "scheduler job failed", err, logger.Fields{"jobName": jobName})
			return
		}

		logger.Debug(ctx, "scheduler job completed", logger.Fields{"jobName": jobName})
	}
}
