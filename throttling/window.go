package throttling

import (
	"context"
	"sync"
	"time"

	"crpt-api-client/domain"
	"github.com/pkg/errors"
)

// Window counts admissions within a fixed time window.
// Check-and-decrement is a single step under the lock, the decrement is
// optimistic: a denied caller does not get it back and competes again
// for the refilled pool after the window boundary.
type Window struct {
	lock         sync.Mutex
	capacity     int
	remaining    int
	windowStart  time.Time
	windowLength time.Duration
}

func NewWindow(windowLength time.Duration, capacity int) (*Window, error) {
	if capacity <= 0 {
		return nil, errors.Errorf("window capacity must be positive, got %d", capacity)
	}
	if windowLength <= 0 {
		return nil, errors.Errorf("window length must be positive, got %s", windowLength)
	}
	return &Window{
		capacity:     capacity,
		remaining:    capacity,
		windowStart:  time.Now(),
		windowLength: windowLength,
	}, nil
}

func (w *Window) TryAcquire(ctx context.Context) (*domain.AdmissionResult, error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	now := time.Now()
	if now.Sub(w.windowStart) >= w.windowLength {
		w.remaining = w.capacity
		w.windowStart = now
	}

	w.remaining--
	if w.remaining >= 0 {
		return &domain.AdmissionResult{Granted: true}, nil
	}

	retryAfter := w.windowLength - now.Sub(w.windowStart)
	if retryAfter < 0 {
		retryAfter = 0
	}
	return &domain.AdmissionResult{
		Granted:    false,
		RetryAfter: retryAfter,
	}, nil
}
