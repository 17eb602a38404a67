/*
Copyright 2026 the Mistral Harness Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

var ErrEmptyAPIKey = errors.New("empty API key")

// NewBearerEditor returns a request editor that attaches the Mistral API key
// as a bearer token to every outbound request.
func NewBearerEditor(token string) (RequestEditorFn, error) {
	if token == "" {
		return nil, ErrEmptyAPIKey
	}

	return func(_ context.Context, req *http.Request) error {
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}, nil
}

// APIError is the envelope Mistral returns for non-validation failures such as
// authentication errors. It is not part of the generated surface because the
// upstream document leaves these responses unspecified.
type APIError struct {
	Object  string `json:"object,omitempty"`
	Message string `json:"message,omitempty"`
	Type    string `json:"type,omitempty"`
	Code    string `json:"code,omitempty"`
}

// DecodeAPIError attempts to decode an error envelope from a raw response
// body. Returns false if the body is not a recognizable error payload.
func DecodeAPIError(body []byte) (*APIError, bool) {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return nil, false
	}

	if apiErr.Message == "" {
		return nil, false
	}

	return &apiErr, true
}
