// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/anidex/internal/platform/apperr"
)

/*
TestConstructors checks the status and code each constructor assigns.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not_found", apperr.NotFound("Anime"), http.StatusNotFound, apperr.CodeNotFound},
		{"validation", apperr.ValidationError("bad"), http.StatusBadRequest, apperr.CodeValidation},
		{"rate_limited", apperr.RateLimited(1), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"internal", apperr.Internal(errors.New("boom")), http.StatusInternalServerError, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

/*
TestInternal_HidesCause ensures the client message never includes the cause.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connection refused")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

/*
TestIs_MatchesByCode verifies errors.Is compares AppErrors by code.
*/
func TestIs_MatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", apperr.NotFound("Anime"))

	assert.True(t, errors.Is(wrapped, apperr.NotFound("Resource")))
	assert.False(t, errors.Is(wrapped, apperr.ValidationError("x")))
}

/*
TestAs extracts the AppError from a wrapped chain.
*/
func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", apperr.ValidationError("bad", apperr.FieldError{Field: "name", Message: "required"}))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "name", ae.Details[0].Field)

	assert.Nil(t, apperr.As(errors.New("plain")))
}
