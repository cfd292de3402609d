// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/anidex/internal/platform/validate"
)

// maxBodyBytes caps request bodies read by DecodeJSON.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	body := http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
IntID parses a named URL parameter as a positive identifier of a SERIAL
(int4) column.

The boolean is false when the parameter is missing, malformed, not
positive, or beyond the int4 range, since no stored row can carry such an id.
*/
func IntID(request *http.Request, name string) (int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(request, name), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int(id), true
}
