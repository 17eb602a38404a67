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
)

var _ = Describe("Models", func() {
	Context("When listing available models", func() {
		Describe("Given a valid API key", func() {
			It("should return a non-empty model list", Label("smoke"), func() {
				// Given: A valid API key
				// When: I request the list of available models
				resp, err := typed.ListModelsV1ModelsGetWithResponse(ctx)

				// Then: The request succeeds with a parsed list payload
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Object).To(HaveValue(Equal("list")))
				Expect(resp.JSON200.Data).NotTo(BeNil())
				Expect(*resp.JSON200.Data).NotTo(BeEmpty())

				// And: Each model card carries the required fields
				for _, model := range *resp.JSON200.Data {
					Expect(model.Id).NotTo(BeEmpty())
					Expect(model.Object).To(HaveValue(Equal("model")))
				}

				GinkgoWriter.Printf("Found %d models\n", len(*resp.JSON200.Data))
			})
		})
	})

	Context("When retrieving a single model", func() {
		Describe("Given a known model identifier", func() {
			It("should return the model card", func() {
				// Given: The configured chat model, which every account can see
				// When: I retrieve it by identifier
				resp, err := typed.RetrieveModelV1ModelsModelIdGetWithResponse(ctx, config.ChatModel)

				// Then: The card matches the requested identifier
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Id).To(Equal(config.ChatModel))
				Expect(resp.JSON200.Object).To(HaveValue(Equal("model")))
				Expect(resp.JSON200.Created).NotTo(BeNil())
				Expect(resp.JSON200.OwnedBy).NotTo(BeNil())
			})
		})

		Describe("Given a non-existent model identifier", func() {
			It("should surface a 404 as a response, not a transport error", func() {
				// Given: An identifier no account has
				// When: I retrieve it
				resp, err := typed.RetrieveModelV1ModelsModelIdGetWithResponse(ctx, "devstral-xxl")

				// Then: The client error class is visible on the response object
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusNotFound))
				Expect(resp.JSON200).To(BeNil())
			})
		})
	})

	Context("When attempting to delete a model", func() {
		Describe("Given a base model", func() {
			It("should refuse the deletion", func() {
				// Given: A base model, which is not deletable
				// When: I attempt to delete it
				status, err := client.DeleteModel(ctx, config.ChatModel)

				// Then: The API rejects the operation with a client-error status
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(BeElementOf(
					http.StatusBadRequest,
					http.StatusForbidden,
					http.StatusNotFound,
					http.StatusMethodNotAllowed,
				))
			})
		})
	})
})
