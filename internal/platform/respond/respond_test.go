// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/anidex/internal/platform/apperr"
	"github.com/taibuivan/anidex/internal/platform/ctxutil"
	"github.com/taibuivan/anidex/internal/platform/respond"
)

func TestCreated_WritesBareBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Created(recorder, map[string]any{"id": 1, "name": "One Piece"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1,"name":"One Piece"}`, recorder.Body.String())
}

func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/animes/1", nil)

	respond.Error(recorder, request, apperr.NotFound("Anime"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"Anime not found","code":"NOT_FOUND"}`, recorder.Body.String())
}

/*
TestError_PlainErrorIsHidden checks that unknown errors become a generic 500
and that the cause only reaches the logs.
*/
func TestError_PlainErrorIsHidden(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/animes", nil)
	request = request.WithContext(ctxutil.WithLogger(request.Context(), logger))

	respond.Error(recorder, request, errors.New("password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, apperr.CodeInternal, body.Code)

	assert.Contains(t, logs.String(), "password authentication failed")
}
