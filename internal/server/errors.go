package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/types"
)

// ErrRateLimited is returned when a client exceeds its request budget
var ErrRateLimited = errors.New("rate limit exceeded, please try again later")

// ErrDecode indicates the request body is not valid JSON for the endpoint
type ErrDecode struct {
	Err error
}

func (e *ErrDecode) Error() string {
	if e.Err == nil {
		return "invalid request body"
	}
	return "invalid request body: " + e.Err.Error()
}

func (e *ErrDecode) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		maxBytes    *http.MaxBytesError
		decode      *ErrDecode
		field       *types.FieldError
		fieldErrors validator.ValidationErrors
		generation  *advisor.GenerationError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &decode), errors.As(err, &field), errors.As(err, &fieldErrors):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &generation):
		if generation.Timeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text sent to clients for err. Server-side
// failures get a generic message; their details only go to the log.
func PublicMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		return describeValidation(fieldErrors)
	}

	switch status := HTTPStatus(err); status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusTooManyRequests:
		return err.Error()
	case http.StatusBadGateway:
		return "the career advice model failed to respond, please try again"
	case http.StatusGatewayTimeout:
		return "the career advice model timed out, please try again"
	default:
		return http.StatusText(status)
	}
}

// describeValidation renders validator errors as "field: rule" pairs using JSON-ish field names.
func describeValidation(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		name := fe.Field()
		if name != "" {
			name = strings.ToLower(name[:1]) + name[1:]
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, name+": "+rule)
	}
	return "validation error: " + strings.Join(parts, ", ")
}
