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

package api

import (
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Model endpoints.
func (e *Endpoints) ListModels() string {
	return "/v1/models"
}

func (e *Endpoints) RetrieveModel(modelID string) string {
	return fmt.Sprintf("/v1/models/%s", url.PathEscape(modelID))
}

func (e *Endpoints) DeleteModel(modelID string) string {
	return fmt.Sprintf("/v1/models/%s", url.PathEscape(modelID))
}

// Inference endpoints.
func (e *Endpoints) ChatCompletions() string {
	return "/v1/chat/completions"
}

func (e *Endpoints) Embeddings() string {
	return "/v1/embeddings"
}
