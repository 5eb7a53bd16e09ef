// Package testutil holds HTTP helpers shared by handler and server tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

// NewRequest creates a new HTTP request for testing. A non-empty string body is
// sent verbatim; any other non-nil body is JSON encoded.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	switch b := body.(type) {
	case nil:
	case string:
		if b != "" {
			bodyBytes = []byte(b)
		}
	default:
		bodyBytes, _ = json.Marshal(b)
	}
	if bodyBytes == nil {
		return httptest.NewRequest(method, path, nil)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// Serve runs the request through h and returns the recorder.
func Serve(h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, NewRequest(method, path, body))
	return w
}

// RecordResponse is a decoded HTTP response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Raw    []byte
	Errors []string
}

// RecordHTTPResponse decodes the recorder, including an {"errors": [...]} body if present.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var body struct {
		Errors []string `json:"errors"`
	}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &body)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Raw:    bodyBytes,
		Errors: body.Errors,
	}
}
