package sleeper

import (
	"context"

	"github.com/Ow1Dev/NoctiSleep/internal/duration"
)

// Sleeper blocks for an interval. It returns early with an error when the
// wait fails or ctx is cancelled; the error is the context's cause in that case.
type Sleeper interface {
	Sleep(ctx context.Context, iv duration.Interval) error
}
