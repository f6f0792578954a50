package invoker

import (
	"context"
	"net/http"

	"crpt-api-client/apierrors"
	"crpt-api-client/domain"
	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/http/httpcli"
	"github.com/txix-open/isp-kit/json"
	"github.com/txix-open/isp-kit/requestid"
)

const (
	requestIdHeader = "x-request-id"
)

type Crpt struct {
	cli         *httpcli.Client
	url         string
	bearerToken string
}

func NewCrpt(cli *httpcli.Client, url string, authToken string) Crpt {
	return Crpt{
		cli:         cli,
		url:         url,
		bearerToken: "Bearer " + authToken,
	}
}

// Invoke sends the prepared request body and classifies the response.
func (i Crpt) Invoke(ctx context.Context, requestBody []byte) (*domain.DocumentResponse, error) {
	requestId := requestid.FromContext(ctx)
	if requestId == "" {
		requestId = requestid.Next()
	}

	responseBody, statusCode, err := i.cli.Post(i.url).
		Header("Authorization", i.bearerToken).
		Header("Content-Type", "application/json").
		Header(requestIdHeader, requestId).
		RequestBody(requestBody).
		DoAndReadBody(ctx)
	if err != nil {
		return nil, apierrors.NewTransportError(errors.WithMessage(err, "call documents create"))
	}

	if statusCode != http.StatusOK {
		return nil, apierrors.NewApiError(
			statusCode,
			string(responseBody),
			errors.Errorf("documents create responded with status %d: %s", statusCode, responseBody),
		)
	}

	response := domain.DocumentResponse{}
	err = json.Unmarshal(responseBody, &response)
	if err != nil {
		return nil, apierrors.NewApiError(
			statusCode,
			string(responseBody),
			errors.WithMessage(err, "unmarshal document response"),
		)
	}

	if response.HasError() {
		return nil, apierrors.NewUpstreamApiError(statusCode, response)
	}

	return &response, nil
}
