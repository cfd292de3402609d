// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestutil "github.com/taibuivan/anidex/internal/platform/request"
	"github.com/taibuivan/anidex/internal/platform/validate"
)

func withParam(request *http.Request, key, value string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(key, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

func TestIntID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		id    int
		ok    bool
	}{
		{"valid", "42", 42, true},
		{"zero", "0", 0, false},
		{"negative", "-3", 0, false},
		{"letters", "abc", 0, false},
		{"empty", "", 0, false},
		{"int4_max", "2147483647", 2147483647, true},
		{"past_int4_max", "2147483648", 0, false},
		{"int64_sized", "99999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.value)

			id, ok := requestutil.IntID(request, "id")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Naruto"}`))
	require.NoError(t, requestutil.DecodeJSON(httptest.NewRecorder(), request, &target))
	assert.Equal(t, "Naruto", target.Name)

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Equal(t, validate.ErrInvalidJSON, requestutil.DecodeJSON(httptest.NewRecorder(), request, &target))

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":7}`))
	assert.Equal(t, validate.ErrInvalidJSON, requestutil.DecodeJSON(httptest.NewRecorder(), request, &target))
}
