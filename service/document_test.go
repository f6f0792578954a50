package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"crpt-api-client/apierrors"
	"crpt-api-client/domain"
	"crpt-api-client/service"
	"crpt-api-client/throttling"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/txix-open/isp-kit/json"
	"github.com/txix-open/isp-kit/test"
)

type invokerMock struct {
	lock     sync.Mutex
	requests [][]byte
	response *domain.DocumentResponse
	err      error
}

func (m *invokerMock) Invoke(ctx context.Context, requestBody []byte) (*domain.DocumentResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.requests = append(m.requests, requestBody)
	return m.response, m.err
}

func (m *invokerMock) Calls() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.requests)
}

func newDocumentService(t *testing.T, invoker service.Invoker) service.Document {
	test, require := test.New(t)
	window, err := throttling.NewWindow(1*time.Minute, 100)
	require.NoError(err)
	return service.NewDocument(throttling.NewLimiter(window), invoker, test.Logger())
}

func TestCreateBuildsOutboundRequest(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	invoker := &invokerMock{response: &domain.DocumentResponse{Value: "ok"}}
	documents := newDocumentService(t, invoker)

	document := domain.Document{
		ProductDocument: "x",
		ProductGroup:    domain.ProductGroupShoes,
		DocumentFormat:  domain.DocumentFormatManual,
		Type:            domain.DocumentTypeLpIntroduceGoods,
	}
	response, err := documents.Create(context.Background(), document, "sig")
	require.NoError(err)
	require.EqualValues("ok", response.Value)
	require.EqualValues(1, invoker.Calls())

	request := domain.DocumentRequest{}
	err = json.Unmarshal(invoker.requests[0], &request)
	require.NoError(err)
	require.EqualValues(domain.DocumentRequest{
		ProductDocument: "x",
		ProductGroup:    "SHOES",
		DocumentFormat:  "MANUAL",
		Type:            "LP_INTRODUCE_GOODS",
		Signature:       "sig",
	}, request)
}

func TestCreateValidatesDocument(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	invoker := &invokerMock{response: &domain.DocumentResponse{Value: "ok"}}
	documents := newDocumentService(t, invoker)

	documentWithoutFormat := domain.Document{
		ProductDocument: "x",
		ProductGroup:    domain.ProductGroupShoes,
		Type:            domain.DocumentTypeLpIntroduceGoods,
	}
	_, err := documents.Create(context.Background(), documentWithoutFormat, "sig")
	validationErr := apierrors.ValidationError{}
	require.ErrorAs(err, &validationErr)
	require.EqualValues(0, invoker.Calls())

	documentWithoutType := domain.Document{
		ProductDocument: "x",
		ProductGroup:    domain.ProductGroupShoes,
		DocumentFormat:  domain.DocumentFormatManual,
	}
	_, err = documents.Create(context.Background(), documentWithoutType, "sig")
	require.ErrorAs(err, &validationErr)
	require.EqualValues(0, invoker.Calls())

	documentWithUnknownGroup := domain.Document{
		ProductDocument: "x",
		ProductGroup:    "FURNITURE",
		DocumentFormat:  domain.DocumentFormatManual,
		Type:            domain.DocumentTypeLpIntroduceGoods,
	}
	_, err = documents.Create(context.Background(), documentWithUnknownGroup, "sig")
	require.ErrorAs(err, &validationErr)
	require.EqualValues(0, invoker.Calls())
}

func TestCreatePropagatesInvokerError(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	apiErr := apierrors.NewApiError(500, "boom", errors.New("status 500"))
	invoker := &invokerMock{err: apiErr}
	documents := newDocumentService(t, invoker)

	document := domain.Document{
		ProductDocument: "x",
		ProductGroup:    domain.ProductGroupShoes,
		DocumentFormat:  domain.DocumentFormatManual,
		Type:            domain.DocumentTypeLpIntroduceGoods,
	}
	_, err := documents.Create(context.Background(), document, "sig")
	actual := apierrors.ApiError{}
	require.ErrorAs(err, &actual)
	require.EqualValues(500, actual.StatusCode)
	require.EqualValues("boom", actual.Body)
}
