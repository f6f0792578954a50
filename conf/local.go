package conf

import (
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
)

const (
	DefaultApiUrl = "https://ismp.crpt.ru/api/v3/lk/documents/create"
)

type Local struct {
	Api        Api
	Throttling Throttling
	Redis      *Redis
	Logging    Logging
}

type Api struct {
	Url       string `valid:"required"`
	AuthToken string `valid:"required"`
}

type Throttling struct {
	Window       string `valid:"required"`
	RequestLimit int    `valid:"required"`
}

func (t Throttling) WindowDuration() (time.Duration, error) {
	window, err := time.ParseDuration(t.Window)
	if err != nil {
		return 0, errors.WithMessage(err, "parse throttling window")
	}
	return window, nil
}

type Logging struct {
	LogLevel log.Level
}

type Redis struct {
	Address  string `valid:"required"`
	Username string
	Password string
}

func (l Local) Validate() error {
	if l.Api.Url == "" {
		return errors.New("api url is required")
	}
	if l.Api.AuthToken == "" {
		return errors.New("api auth token is required")
	}
	window, err := l.Throttling.WindowDuration()
	if err != nil {
		return err
	}
	if window <= 0 {
		return errors.Errorf("throttling window must be positive, got '%s'", l.Throttling.Window)
	}
	if l.Throttling.RequestLimit <= 0 {
		return errors.Errorf("throttling request limit must be positive, got %d", l.Throttling.RequestLimit)
	}
	if l.Redis != nil && l.Redis.Address == "" {
		return errors.New("invalid redis config. address is required")
	}
	return nil
}
