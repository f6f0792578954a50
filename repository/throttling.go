package repository

import (
	"context"

	"crpt-api-client/domain"
	"github.com/go-redis/redis_rate/v10"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	throttlingKey = "crpt_api:throttling"
)

// Throttling shares one request quota between several client instances.
type Throttling struct {
	cli   *redis_rate.Limiter
	limit redis_rate.Limit
}

func NewThrottling(cli redis.UniversalClient, limit redis_rate.Limit) Throttling {
	return Throttling{
		cli:   redis_rate.NewLimiter(cli),
		limit: limit,
	}
}

func (r Throttling) TryAcquire(ctx context.Context) (*domain.AdmissionResult, error) {
	result, err := r.cli.Allow(ctx, throttlingKey, r.limit)
	if err != nil {
		return nil, errors.WithMessage(err, "redis_rate/Allow")
	}
	return &domain.AdmissionResult{
		Granted:    result.Allowed > 0,
		RetryAfter: result.RetryAfter,
	}, nil
}
