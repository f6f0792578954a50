package service

import (
	"context"

	"crpt-api-client/apierrors"
	"crpt-api-client/domain"
	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
	"github.com/txix-open/isp-kit/log"
)

type Throttler interface {
	Execute(ctx context.Context, task func(ctx context.Context) error) error
}

type Invoker interface {
	Invoke(ctx context.Context, requestBody []byte) (*domain.DocumentResponse, error)
}

type Document struct {
	throttler Throttler
	invoker   Invoker
	logger    log.Logger
}

func NewDocument(throttler Throttler, invoker Invoker, logger log.Logger) Document {
	return Document{
		throttler: throttler,
		invoker:   invoker,
		logger:    logger,
	}
}

// Create validates the document, builds the outbound request and sends it
// under the request quota. Exactly one network call is issued per invocation,
// none on a validation or serialization failure.
func (s Document) Create(
	ctx context.Context,
	document domain.Document,
	signature string,
) (*domain.DocumentResponse, error) {
	requestBody, err := s.buildRequest(document, signature)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "create document",
		log.String("productGroup", string(document.ProductGroup)),
		log.String("documentFormat", string(document.DocumentFormat)),
		log.String("documentType", string(document.Type)),
	)

	var response *domain.DocumentResponse
	err = s.throttler.Execute(ctx, func(ctx context.Context) error {
		resp, err := s.invoker.Invoke(ctx, requestBody)
		if err != nil {
			return err
		}
		response = resp
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s Document) buildRequest(document domain.Document, signature string) ([]byte, error) {
	if !document.ProductGroup.IsValid() {
		return nil, apierrors.NewValidationError("unknown product group '" + string(document.ProductGroup) + "'")
	}
	if !document.DocumentFormat.IsValid() {
		return nil, apierrors.NewValidationError("unknown document format '" + string(document.DocumentFormat) + "'")
	}
	if !document.Type.IsValid() {
		return nil, apierrors.NewValidationError("unknown document type '" + string(document.Type) + "'")
	}

	request := domain.DocumentRequest{
		ProductDocument: document.ProductDocument,
		ProductGroup:    string(document.ProductGroup),
		DocumentFormat:  string(document.DocumentFormat),
		Type:            string(document.Type),
		Signature:       signature,
	}
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, apierrors.NewEncodingError(errors.WithMessage(err, "marshal document request"))
	}
	return requestBody, nil
}
