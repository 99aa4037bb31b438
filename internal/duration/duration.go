package duration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MaxSeconds is the largest accepted request. The whole-seconds part of an
// Interval is bounded by the platform's 32-bit signed integer.
const MaxSeconds = math.MaxInt32

const nanosPerSecond = int64(time.Second)

var (
	ErrSyntax = errors.New("not a decimal number")
	ErrRange  = errors.New("exceeds the whole-seconds range")
)

// cSpace is the C locale's isspace set, which scanf skips around numbers.
const cSpace = " \t\n\v\f\r"

var decimal = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// Interval is a duration split into whole seconds and the nanoseconds left over.
// Nsec is always in [0, 1e9).
type Interval struct {
	Sec  int64
	Nsec int64
}

// Parse reads a number of seconds written in decimal notation. Surrounding
// ASCII whitespace is ignored, anything else after the number is rejected.
// Non-positive values are returned as is; callers treat them as nothing to do.
func Parse(s string) (float64, error) {
	t := strings.Trim(s, cSpace)
	if !decimal.MatchString(t) {
		return 0, fmt.Errorf("%q: %w", s, ErrSyntax)
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%q: %w", s, ErrSyntax)
	}

	if f > MaxSeconds {
		return 0, fmt.Errorf("%q: %w", s, ErrRange)
	}

	return f, nil
}

// Split converts a positive number of seconds into an Interval, truncating
// both parts toward zero.
func Split(seconds float64) Interval {
	sec := int64(seconds)
	nsec := int64((seconds - float64(sec)) * float64(nanosPerSecond))

	switch {
	case nsec < 0:
		nsec = 0
	case nsec >= nanosPerSecond:
		nsec = nanosPerSecond - 1
	}

	return Interval{Sec: sec, Nsec: nsec}
}

// Nanoseconds returns the whole interval in nanoseconds.
func (iv Interval) Nanoseconds() int64 {
	return iv.Sec*nanosPerSecond + iv.Nsec
}

func (iv Interval) Duration() time.Duration {
	return time.Duration(iv.Nanoseconds())
}

func (iv Interval) String() string {
	return fmt.Sprintf("%d.%09ds", iv.Sec, iv.Nsec)
}
