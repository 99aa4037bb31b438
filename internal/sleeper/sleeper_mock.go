package sleeper

import (
	"context"

	"github.com/Ow1Dev/NoctiSleep/internal/duration"
)

type MockSleeper struct {
	SleepFunc func(ctx context.Context, iv duration.Interval) error
	Calls     []duration.Interval
}

func (m *MockSleeper) Sleep(ctx context.Context, iv duration.Interval) error {
	m.Calls = append(m.Calls, iv)
	if m.SleepFunc != nil {
		return m.SleepFunc(ctx, iv)
	}
	return nil
}
