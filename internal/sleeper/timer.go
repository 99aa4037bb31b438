package sleeper

import (
	"context"

	"github.com/benbjohnson/clock"

	"github.com/Ow1Dev/NoctiSleep/internal/duration"
)

// TimerSleeper waits on a runtime timer. It works on every platform.
type TimerSleeper struct {
	clock clock.Clock
}

func NewTimerSleeper(c clock.Clock) *TimerSleeper {
	return &TimerSleeper{
		clock: c,
	}
}

func (s *TimerSleeper) Sleep(ctx context.Context, iv duration.Interval) error {
	timer := s.clock.Timer(iv.Duration())
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}
