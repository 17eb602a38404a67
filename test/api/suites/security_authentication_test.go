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

//nolint:testpackage,revive // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/qaops/mistral-e2e/pkg/openapi"
)

var _ = Describe("Security and Authentication", func() {
	Context("When credentials are wrong", func() {
		Describe("Given an invalid bearer token", func() {
			It("should reject the request with 401", func() {
				// Given: A syntactically plausible but invalid token
				client.SetAuthToken("invalid-token-for-testing")

				// When: I call an authenticated endpoint
				resp, body, err := client.Do(ctx, http.MethodGet, "/v1/models", nil)

				// Then: The API answers 401 rather than failing at transport level
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))

				if apiErr, ok := openapi.DecodeAPIError(body); ok {
					GinkgoWriter.Printf("authentication rejected: %s\n", apiErr.Message)
				}
			})
		})

		Describe("Given no bearer token at all", func() {
			It("should reject the request with 401", func() {
				client.SetAuthToken("")

				resp, _, err := client.Do(ctx, http.MethodGet, "/v1/models", nil)

				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
			})
		})
	})
})
