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

//nolint:err113,revive // dynamic errors and naming conventions acceptable in test code
package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

// APIClient is a deliberately independent HTTP client for the Mistral API,
// maintained alongside the generated one. It gives the negative-path suites
// direct access to status codes and raw bodies, and triangulates the
// generated client: a spec change that breaks one should break both.
type APIClient struct {
	baseURL   string
	client    *http.Client
	authToken string
	config    *TestConfig
	endpoints *Endpoints
}

func NewAPIClient(baseURL string) *APIClient {
	config := LoadTestConfig()
	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL)
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		authToken: config.APIKey,
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// SetAuthToken replaces the bearer token, e.g. with garbage for auth tests.
func (c *APIClient) SetAuthToken(token string) {
	c.authToken = token
}

// CloseIdleConnections releases pooled connections so a finished spec leaks
// nothing into the next one.
func (c *APIClient) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, truncateBody(body), traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// Do issues an arbitrary request against the API and returns the response and
// its fully read body. Tests that need to send malformed payloads or hit
// unbound paths use this instead of the typed helpers. The interaction is
// logged the same way as typed calls.
func (c *APIClient) Do(ctx context.Context, method, path string, body io.Reader) (*http.Response, []byte, error) {
	return c.doRequest(ctx, method, path, body, 0)
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, expectedStatus int) (*http.Response, []byte, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, truncateBody(string(respBody)))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)
		return resp, respBody, fmt.Errorf("unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", expectedStatus, resp.StatusCode, truncateBody(string(respBody)), extractTraceID(traceParent))
	}

	return resp, respBody, nil
}

// ListModels returns the decoded model list payload.
func (c *APIClient) ListModels(ctx context.Context) (map[string]interface{}, error) {
	path := c.endpoints.ListModels()

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}

	var models map[string]interface{}
	if err := json.Unmarshal(respBody, &models); err != nil {
		return nil, fmt.Errorf("unmarshaling model list: %w", err)
	}

	return models, nil
}

// GetModel retrieves a single model card. The status code is always surfaced
// so callers can assert on 404 for unknown identifiers.
func (c *APIClient) GetModel(ctx context.Context, modelID string) (map[string]interface{}, int, error) {
	path := c.endpoints.RetrieveModel(modelID)

	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodGet, path, nil, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("getting model: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	var model map[string]interface{}
	if err := json.Unmarshal(respBody, &model); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("unmarshaling model response: %w", err)
	}

	return model, resp.StatusCode, nil
}

// DeleteModel attempts a model deletion and returns the resulting status
// code. Base models must refuse this, which is exactly what the suites check.
func (c *APIClient) DeleteModel(ctx context.Context, modelID string) (int, error) {
	path := c.endpoints.DeleteModel(modelID)

	//nolint:bodyclose // response body is closed in doRequest
	resp, _, err := c.doRequest(ctx, http.MethodDelete, path, nil, 0)
	if err != nil {
		return 0, fmt.Errorf("deleting model: %w", err)
	}

	return resp.StatusCode, nil
}

// ChatCompletion posts an arbitrary chat payload and returns the status code
// and decoded body, if any. Used for requests the typed client cannot
// express, such as a missing model field.
func (c *APIClient) ChatCompletion(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, int, error) {
	return c.postJSON(ctx, c.endpoints.ChatCompletions(), payload)
}

// CreateEmbeddings posts an arbitrary embeddings payload.
func (c *APIClient) CreateEmbeddings(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, int, error) {
	return c.postJSON(ctx, c.endpoints.Embeddings(), payload)
}

func (c *APIClient) postJSON(ctx context.Context, path string, payload map[string]interface{}) (map[string]interface{}, int, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshaling request body: %w", err)
	}

	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodPost, path, strings.NewReader(string(bodyBytes)), 0)
	if err != nil {
		return nil, 0, fmt.Errorf("posting %s: %w", path, err)
	}

	if len(respBody) == 0 {
		return nil, resp.StatusCode, nil
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		// Non-JSON error bodies are possible on gateway failures; the
		// status code is still meaningful to the caller.
		return nil, resp.StatusCode, nil
	}

	return decoded, resp.StatusCode, nil
}
