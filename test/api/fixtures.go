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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/qaops/mistral-e2e/pkg/openapi"
)

// SkipWithoutAPIKey marks the current spec skipped when no API key is
// configured. The reason names the missing variable so a skipped run is
// self-explanatory.
func SkipWithoutAPIKey(config *TestConfig) {
	if !config.HasAPIKey() {
		Skip(SkipReason())
	}
}

// NewGeneratedClient builds a typed client against the configured endpoint,
// authenticated, with every interaction logged through LoggingTransport.
// Callers own the returned http.Client's idle connections.
func NewGeneratedClient(config *TestConfig) (*openapi.ClientWithResponses, *http.Client, error) {
	editor, err := openapi.NewBearerEditor(config.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("building auth editor: %w", err)
	}

	httpClient := &http.Client{
		Timeout: config.RequestTimeout,
		Transport: &LoggingTransport{
			LogBodies: config.LogResponses,
		},
	}

	client, err := openapi.NewClientWithResponses(
		config.BaseURL,
		openapi.WithHTTPClient(httpClient),
		openapi.WithRequestEditorFn(editor),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("building generated client: %w", err)
	}

	return client, httpClient, nil
}

// GeneratedClientFixture builds the typed client for a spec and schedules the
// release of its connection pool. The cleanup runs whether the spec passes,
// fails, or panics, so no test leaks open connections into the next one.
func GeneratedClientFixture(config *TestConfig) *openapi.ClientWithResponses {
	client, httpClient, err := NewGeneratedClient(config)
	Expect(err).NotTo(HaveOccurred())

	DeferCleanup(httpClient.CloseIdleConnections)

	return client
}

// RawClientFixture builds the independent APIClient for a spec and schedules
// its connection-pool release.
func RawClientFixture(config *TestConfig) *APIClient {
	client := NewAPIClientWithConfig(config)

	DeferCleanup(client.CloseIdleConnections)

	return client
}

// ChatPayloadBuilder builds chat completion payloads for the raw client.
type ChatPayloadBuilder struct {
	payload map[string]interface{}
}

// NewChatPayload creates a chat payload builder with deterministic defaults.
func NewChatPayload(config *TestConfig) *ChatPayloadBuilder {
	return &ChatPayloadBuilder{
		payload: map[string]interface{}{
			"model":       config.ChatModel,
			"messages":    []map[string]interface{}{},
			"temperature": 0.0,
			"max_tokens":  20,
		},
	}
}

// WithModel sets the model (pass empty string to omit the field entirely).
func (b *ChatPayloadBuilder) WithModel(model string) *ChatPayloadBuilder {
	if model == "" {
		delete(b.payload, "model")
	} else {
		b.payload["model"] = model
	}

	return b
}

// WithMessage appends a message with the given role.
func (b *ChatPayloadBuilder) WithMessage(role, content string) *ChatPayloadBuilder {
	messages := b.payload["messages"].([]map[string]interface{}) //nolint:forcetypeassert // safe: we control payload structure
	b.payload["messages"] = append(messages, map[string]interface{}{
		"role":    role,
		"content": content,
	})

	return b
}

// WithMaxTokens sets the completion budget.
func (b *ChatPayloadBuilder) WithMaxTokens(n int) *ChatPayloadBuilder {
	b.payload["max_tokens"] = n
	return b
}

// Build returns the completed chat payload.
func (b *ChatPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// NewEmbeddingPayload creates an embeddings payload for the raw client.
func NewEmbeddingPayload(config *TestConfig, input ...string) map[string]interface{} {
	return map[string]interface{}{
		"model": config.EmbedModel,
		"input": input,
	}
}

// DotProduct is the similarity measure used by the embeddings suite. Mistral
// embeddings are normalized, so the dot product orders pairs like cosine
// similarity does.
func DotProduct(a, b []float64) float64 {
	var sum float64

	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}
