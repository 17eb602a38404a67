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
	"github.com/qaops/mistral-e2e/test/api"
)

var _ = Describe("Embeddings", func() {
	Context("When embedding text", func() {
		Describe("Given a single input", func() {
			It("should return one non-empty vector", Label("smoke"), func() {
				request := openapi.EmbeddingRequest{
					Model: config.EmbedModel,
					Input: []string{"Hello, world!"},
				}

				resp, err := typed.EmbeddingsV1EmbeddingsPostWithResponse(ctx, request)

				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Data).To(HaveLen(1))
				Expect(resp.JSON200.Data[0].Embedding).NotTo(BeNil())
				Expect(*resp.JSON200.Data[0].Embedding).NotTo(BeEmpty())
			})
		})

		Describe("Given a batch of inputs", func() {
			It("should return one vector per input, all with equal dimensions", func() {
				inputs := []string{
					"The weather is miserable today.",
					"But I live in Sweden.",
					"Right!!!",
				}

				request := openapi.EmbeddingRequest{
					Model: config.EmbedModel,
					Input: inputs,
				}

				resp, err := typed.EmbeddingsV1EmbeddingsPostWithResponse(ctx, request)

				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Data).To(HaveLen(len(inputs)))

				dimensions := map[int]struct{}{}
				for _, item := range resp.JSON200.Data {
					Expect(item.Embedding).NotTo(BeNil())
					dimensions[len(*item.Embedding)] = struct{}{}
				}

				Expect(dimensions).To(HaveLen(1), "all embeddings should share one dimensionality")
			})
		})

		Describe("Given semantically related and unrelated inputs", func() {
			It("should rank the related pair above the unrelated pair", func() {
				texts := []string{
					"Apples and broccoli have high fibre content",
					"Siri is the AI assistant in Apple phones",
					"Tim Cook is investing a lot in Apple's AI development",
				}

				request := openapi.EmbeddingRequest{
					Model: config.EmbedModel,
					Input: texts,
				}

				resp, err := typed.EmbeddingsV1EmbeddingsPostWithResponse(ctx, request)

				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Data).To(HaveLen(3))

				embeddings := make([][]float64, len(resp.JSON200.Data))
				for i, item := range resp.JSON200.Data {
					Expect(item.Embedding).NotTo(BeNil())
					embeddings[i] = *item.Embedding
				}

				// Texts 1 and 2 are both about Apple-the-company; text 0 is
				// about the fruit.
				companySimilarity := api.DotProduct(embeddings[1], embeddings[2])
				fruitSimilarity := api.DotProduct(embeddings[0], embeddings[1])

				GinkgoWriter.Printf("company=%f fruit=%f\n", companySimilarity, fruitSimilarity)
				Expect(companySimilarity).To(BeNumerically(">", fruitSimilarity))
			})
		})
	})

	Context("When the request is invalid", func() {
		Describe("Given an unknown embeddings model", func() {
			It("should be rejected with a client error", func() {
				payload := api.NewEmbeddingPayload(config, "Hello")
				payload["model"] = "mistral-embed-xxl"

				_, status, err := client.CreateEmbeddings(ctx, payload)

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(BeNumerically(">=", http.StatusBadRequest))
				Expect(status).To(BeNumerically("<", http.StatusInternalServerError))
			})
		})
	})
})
