package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"CampusHub/internal/economy"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSweeper struct {
	calls atomic.Int32
	out   economy.SweepOutcome
	err   error
}

func (s *stubSweeper) SweepStreak() (economy.SweepOutcome, error) {
	s.calls.Add(1)
	return s.out, s.err
}

func TestRunSweepNow(t *testing.T) {
	sw := &stubSweeper{out: economy.SweepAtRisk}
	s := NewScheduler(sw, zerolog.Nop())

	assert.Equal(t, economy.SweepAtRisk, s.RunSweepNow())
	assert.EqualValues(t, 1, sw.calls.Load())
}

func TestRunSweepNow_Error(t *testing.T) {
	sw := &stubSweeper{out: economy.SweepLost, err: errors.New("boom")}
	s := NewScheduler(sw, zerolog.Nop())

	assert.Equal(t, economy.SweepNone, s.RunSweepNow())
}

func TestRegisterAll_BadCron(t *testing.T) {
	s := NewScheduler(&stubSweeper{}, zerolog.Nop())
	assert.Error(t, s.RegisterAll("not a cron"))
}

func TestCronFiresSweep(t *testing.T) {
	sw := &stubSweeper{out: economy.SweepNone}
	s := NewScheduler(sw, zerolog.Nop())
	require.NoError(t, s.RegisterAll("* * * * * *"))

	s.Start()
	assert.Eventually(t, func() bool { return sw.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	s.Stop()
}
