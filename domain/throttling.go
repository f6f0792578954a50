package domain

import (
	"time"
)

type AdmissionResult struct {
	Granted    bool
	RetryAfter time.Duration
}
