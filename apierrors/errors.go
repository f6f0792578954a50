package apierrors

import (
	"crpt-api-client/domain"
	"github.com/pkg/errors"
)

// ValidationError reports invalid input. No network call was issued.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) ValidationError {
	return ValidationError{Reason: reason}
}

func (e ValidationError) Error() string {
	return "invalid document: " + e.Reason
}

// EncodingError reports a request serialization failure, fatal to the call.
type EncodingError struct {
	err error
}

func NewEncodingError(internalError error) EncodingError {
	return EncodingError{err: internalError}
}

func (e EncodingError) Error() string {
	return e.err.Error()
}

func (e EncodingError) Unwrap() error {
	return e.err
}

// TransportError reports a network/IO failure. The call is not retried.
type TransportError struct {
	err error
}

func NewTransportError(internalError error) TransportError {
	return TransportError{err: internalError}
}

func (e TransportError) Error() string {
	return e.err.Error()
}

func (e TransportError) Unwrap() error {
	return e.err
}

// ApiError reports a non-200 status, a malformed 200 body
// or an upstream-reported business error.
type ApiError struct {
	StatusCode   int
	Body         string
	ErrorCode    string
	ErrorMessage string
	err          error
}

func NewApiError(statusCode int, body string, internalError error) ApiError {
	return ApiError{
		StatusCode: statusCode,
		Body:       body,
		err:        internalError,
	}
}

func NewUpstreamApiError(statusCode int, response domain.DocumentResponse) ApiError {
	return ApiError{
		StatusCode:   statusCode,
		ErrorCode:    response.ErrorCode,
		ErrorMessage: response.ErrorMessage,
		err: errors.Errorf(
			"crpt reported error: code '%s', message '%s'",
			response.ErrorCode, response.ErrorMessage,
		),
	}
}

func (e ApiError) Error() string {
	return e.err.Error()
}

func (e ApiError) Unwrap() error {
	return e.err
}
