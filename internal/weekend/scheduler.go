package weekend

import (
	"context"
	"time"

	"nbrates/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultPopulateInterval = 24 * time.Hour

type Scheduler struct {
	repo        adapters.WeekendRepository
	horizonDays int
	interval    time.Duration
	// -----
	sched gocron.Scheduler
}

func NewScheduler(repo adapters.WeekendRepository, horizonDays int, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultPopulateInterval
	}
	return &Scheduler{repo: repo, horizonDays: horizonDays, interval: interval}
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if popErr := PopulateWeekends(jobCtx, execID, s.repo, s.horizonDays); popErr != nil {
			logrus.Errorf("Weekend populate job %s failed: %v", execID, popErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
