package scheduler

import (
	"fmt"

	"CampusHub/internal/economy"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Sweeper ages the streak against the calendar.
type Sweeper interface {
	SweepStreak() (economy.SweepOutcome, error)
}

// Scheduler manages the periodic economy jobs.
type Scheduler struct {
	Cron    *cron.Cron
	Sweeper Sweeper
	log     zerolog.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(sw Sweeper, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Sweeper: sw,
		log:     log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll registers the streak sweep.
func (s *Scheduler) RegisterAll(sweepCron string) error {
	if _, err := s.Cron.AddFunc(sweepCron, func() { s.sweep() }); err != nil {
		return fmt.Errorf("register streak sweep: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Int("jobs", len(s.Cron.Entries())).Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunSweepNow executes the streak sweep immediately.
func (s *Scheduler) RunSweepNow() economy.SweepOutcome {
	return s.sweep()
}

func (s *Scheduler) sweep() economy.SweepOutcome {
	s.log.Debug().Msg("running streak sweep")
	out, err := s.Sweeper.SweepStreak()
	if err != nil {
		s.log.Error().Err(err).Msg("streak sweep")
		return economy.SweepNone
	}
	return out
}
