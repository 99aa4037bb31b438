package cli

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/Ow1Dev/NoctiSleep/internal/duration"
	"github.com/Ow1Dev/NoctiSleep/internal/sleeper"
)

// Command is one invocation of sleep: parse, validate, convert, wait.
type Command struct {
	prog    string
	sleeper sleeper.Sleeper
	clock   clock.Clock // only times the debug traces
	logger  zerolog.Logger
}

func NewCommand(prog string, s sleeper.Sleeper, c clock.Clock, logger zerolog.Logger) *Command {
	return &Command{
		prog:    prog,
		sleeper: s,
		clock:   c,
		logger:  logger.With().Str("component", "command").Logger(),
	}
}

// Run takes the arguments after the program name. A nil error means the
// interval elapsed or there was nothing to wait for.
func (c *Command) Run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return c.usage(fmt.Errorf("expected 1 argument, got %d", len(args)))
	}

	seconds, err := duration.Parse(args[0])
	if err != nil {
		return c.usage(err)
	}
	c.logger.Debug().Float64("seconds", seconds).Msg("parsed")

	if seconds <= 0 {
		c.logger.Debug().Msg("non-positive duration, nothing to do")
		return nil
	}

	iv := duration.Split(seconds)
	c.logger.Debug().Int64("sec", iv.Sec).Int64("nsec", iv.Nsec).Msgf("sleeping for %s", iv)

	start := c.clock.Now()
	if err := c.sleeper.Sleep(ctx, iv); err != nil {
		elapsed := c.clock.Since(start)
		c.logger.Debug().Err(err).
			Dur("elapsed", elapsed).
			Dur("remaining", iv.Duration()-elapsed).
			Msg("wait failed")
		return &WaitError{Prog: c.prog, Err: err}
	}

	c.logger.Debug().Dur("elapsed", c.clock.Since(start)).Msg("done")
	return nil
}

func (c *Command) usage(err error) error {
	c.logger.Debug().Err(err).Msg("usage error")
	return &UsageError{Prog: c.prog, Err: err}
}
