package throttling

import (
	"context"
	"time"

	"crpt-api-client/domain"
	"github.com/pkg/errors"
)

type AdmissionSource interface {
	TryAcquire(ctx context.Context) (*domain.AdmissionResult, error)
}

type Limiter struct {
	source AdmissionSource
}

func NewLimiter(source AdmissionSource) Limiter {
	return Limiter{
		source: source,
	}
}

// Execute runs task as soon as the admission source grants a permit.
// A denied caller sleeps for RetryAfter and re-acquires instead of running
// the task right away: other callers may drain the refilled pool first.
// Waiting callers are not ordered, the wait is canceled via ctx.
func (l Limiter) Execute(ctx context.Context, task func(ctx context.Context) error) error {
	for {
		result, err := l.source.TryAcquire(ctx)
		if err != nil {
			return errors.WithMessage(err, "try acquire")
		}
		if result.Granted {
			return task(ctx)
		}

		if result.RetryAfter <= 0 {
			continue
		}
		timer := time.NewTimer(result.RetryAfter)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
