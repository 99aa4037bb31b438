//go:build linux || freebsd || netbsd || openbsd || dragonfly || solaris

package sleeper

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/Ow1Dev/NoctiSleep/internal/duration"
)

// NanoSleeper blocks in nanosleep(2) with the interval's timespec.
type NanoSleeper struct{}

func (s *NanoSleeper) Sleep(ctx context.Context, iv duration.Interval) error {
	if err := ctx.Err(); err != nil {
		return context.Cause(ctx)
	}

	done := make(chan error, 1)
	go func() {
		ts := unix.NsecToTimespec(iv.Nanoseconds())
		var left unix.Timespec
		for {
			err := unix.Nanosleep(&ts, &left)
			// The runtime's own signals can wake nanosleep; only cancellation ends the wait early.
			if errors.Is(err, unix.EINTR) && ctx.Err() == nil {
				ts = left
				continue
			}
			done <- err
			return
		}
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("nanosleep: %w", err)
		}
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

// Default returns the sleeper backed by the platform's nanosleep.
func Default() Sleeper {
	return &NanoSleeper{}
}
