package cli

import (
	"errors"
	"fmt"
)

const (
	ExitOK    = 0
	ExitUsage = 1
	ExitWait  = 1
)

// UsageError reports malformed or out-of-range command-line input.
type UsageError struct {
	Prog string
	Err  error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage : %s <seconds>", e.Prog)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func (e *UsageError) ExitCode() int {
	return ExitUsage
}

// WaitError reports a wait that failed or was interrupted.
type WaitError struct {
	Prog string
	Err  error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("%s: error while sleeping", e.Prog)
}

func (e *WaitError) Unwrap() error {
	return e.Err
}

func (e *WaitError) ExitCode() int {
	return ExitWait
}

// ExitCode maps an error returned by Command.Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
