//go:build !(linux || freebsd || netbsd || openbsd || dragonfly || solaris)

package sleeper

import "github.com/benbjohnson/clock"

func Default() Sleeper {
	return NewTimerSleeper(clock.New())
}
