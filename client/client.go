package client

import (
	"context"
	"net/http"
	"sync/atomic"

	"crpt-api-client/conf"
	"crpt-api-client/domain"
	"crpt-api-client/invoker"
	"crpt-api-client/repository"
	"crpt-api-client/service"
	"crpt-api-client/throttling"
	"github.com/go-redis/redis_rate/v10"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/http/httpcli"
	"github.com/txix-open/isp-kit/log"
)

// Client submits documents to the CRPT documents create endpoint under
// a request quota. One instance owns the quota state and the transport,
// safe for concurrent use.
type Client struct {
	documents  service.Document
	httpClient *http.Client
	redisCli   redis.UniversalClient
	closed     atomic.Bool
}

func New(config conf.Local, logger log.Logger) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, errors.WithMessage(err, "validate config")
	}
	window, err := config.Throttling.WindowDuration()
	if err != nil {
		return nil, err
	}

	var (
		source   throttling.AdmissionSource
		redisCli redis.UniversalClient
	)
	if config.Redis != nil {
		redisCli = redis.NewClient(&redis.Options{
			Addr:     config.Redis.Address,
			Username: config.Redis.Username,
			Password: config.Redis.Password,
		})
		source = repository.NewThrottling(redisCli, redis_rate.Limit{
			Rate:   config.Throttling.RequestLimit,
			Burst:  config.Throttling.RequestLimit,
			Period: window,
		})
	} else {
		source, err = throttling.NewWindow(window, config.Throttling.RequestLimit)
		if err != nil {
			return nil, errors.WithMessage(err, "new throttling window")
		}
	}

	httpClient := &http.Client{}
	crpt := invoker.NewCrpt(httpcli.NewWithClient(httpClient), config.Api.Url, config.Api.AuthToken)
	documents := service.NewDocument(throttling.NewLimiter(source), crpt, logger)

	return &Client{
		documents:  documents,
		httpClient: httpClient,
		redisCli:   redisCli,
	}, nil
}

func (c *Client) CreateDocument(
	ctx context.Context,
	document domain.Document,
	signature string,
) (*domain.DocumentResponse, error) {
	if c.closed.Load() {
		return nil, domain.ErrClientClosed
	}
	return c.documents.Create(ctx, document, signature)
}

// Close releases transport resources. Repeated calls are no-ops.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.httpClient.CloseIdleConnections()
	if c.redisCli != nil {
		return c.redisCli.Close()
	}
	return nil
}
