package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrClientClosed = errors.New("client is closed")
)
