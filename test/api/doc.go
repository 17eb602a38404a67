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

// Package api provides end-to-end test utilities for the Mistral API.
//
// # Two clients
//
// This package maintains a separate HTTP client implementation (APIClient)
// alongside the auto-generated OpenAPI client. This design choice provides
// several benefits:
//
// 1. **API Contract Validation**: Having an independent client implementation
// serves as a form of triangulation on API correctness. Any legitimate change
// to the OpenAPI document must have a compensating change in this client,
// making API evolution more explicit and reviewable.
//
// 2. **Test-Specific Features**: The custom client includes features tailored
// for end-to-end testing:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Flexible authentication token management for negative-path tests
//   - Direct access to HTTP status codes and raw response bodies,
//     including for requests the typed client cannot express
//
// The generated client is wrapped in LoggingTransport instead, so typed calls
// get the same interaction logging without the generated code knowing about
// it.
//
// # Skip semantics
//
// All live suites require MISTRAL_API_KEY. When it is unset they skip with a
// reason naming the variable; they never fail. This keeps "not configured"
// distinguishable from "broken against the live API" in CI results.
package api
