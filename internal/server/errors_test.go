package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	chatErr := (&types.ChatRequest{}).Validate()
	require.Error(t, chatErr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "decode", err: &ErrDecode{Err: errors.New("unexpected EOF")}, want: http.StatusBadRequest},
		{name: "field error", err: &types.FieldError{Field: "industry", Message: "required"}, want: http.StatusBadRequest},
		{name: "validator errors", err: chatErr, want: http.StatusBadRequest},
		{name: "body too large", err: &ErrDecode{Err: &http.MaxBytesError{Limit: 10}}, want: http.StatusRequestEntityTooLarge},
		{name: "rate limited", err: fmt.Errorf("chat: %w", ErrRateLimited), want: http.StatusTooManyRequests},
		{name: "generation", err: &advisor.GenerationError{Operation: "chat", Err: errors.New("503")}, want: http.StatusBadGateway},
		{name: "generation timeout", err: &advisor.GenerationError{Operation: "chat", Err: context.DeadlineExceeded}, want: http.StatusGatewayTimeout},
		{name: "bare deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	chatErr := (&types.ChatRequest{}).Validate()
	assert.Equal(t, "validation error: message: required", PublicMessage(chatErr))

	assert.Equal(t, "industry: industry or industries is required",
		PublicMessage(&types.FieldError{Field: "industry", Message: "industry or industries is required"}))

	assert.Equal(t, "Internal Server Error", PublicMessage(errors.New("db password leaked")))
	assert.NotContains(t, PublicMessage(&advisor.GenerationError{Operation: "chat", Err: errors.New("api key invalid")}), "api key")
	assert.Contains(t, PublicMessage(&advisor.GenerationError{Operation: "chat", Err: context.DeadlineExceeded}), "timed out")
}

func TestErrDecode(t *testing.T) {
	inner := errors.New("unexpected EOF")
	err := &ErrDecode{Err: inner}

	assert.Equal(t, "invalid request body: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "invalid request body", (&ErrDecode{}).Error())
}
