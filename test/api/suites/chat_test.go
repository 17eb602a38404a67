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
	"k8s.io/utils/ptr"

	"github.com/qaops/mistral-e2e/pkg/openapi"
	"github.com/qaops/mistral-e2e/test/api"
)

var _ = Describe("Chat Completions", func() {
	Context("When requesting a completion", func() {
		Describe("Given a well-formed request", func() {
			It("should return at least one choice", Label("smoke"), func() {
				runID := api.GenerateRunID()
				GinkgoWriter.Printf("chat smoke run %s\n", runID)

				// Given: A minimal single-turn request
				request := openapi.ChatCompletionRequest{
					Model: config.ChatModel,
					Messages: []openapi.ChatMessage{
						{Role: openapi.ChatMessageRoleUser, Content: "What is 2 + 2? Reply with just the number."},
					},
					MaxTokens:   ptr.To(10),
					Temperature: ptr.To[float32](0),
				}

				// When: I request a completion
				resp, err := typed.ChatCompletionV1ChatCompletionsPostWithResponse(ctx, request)

				// Then: A parsed completion with content comes back
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Choices).NotTo(BeEmpty())
				Expect(resp.JSON200.Choices[0].Message.Content).NotTo(BeEmpty())
				Expect(resp.JSON200.Usage.TotalTokens).To(BeNumerically(">", 0))
			})
		})

		Describe("Given a multi-turn conversation", func() {
			It("should accept the prior assistant turn as history", func() {
				// Given: An opening question
				first := openapi.ChatCompletionRequest{
					Model: config.ChatModel,
					Messages: []openapi.ChatMessage{
						{Role: openapi.ChatMessageRoleUser, Content: "What is 2 + 2?"},
					},
					MaxTokens:   ptr.To(50),
					Temperature: ptr.To[float32](0),
				}

				resp1, err := typed.ChatCompletionV1ChatCompletionsPostWithResponse(ctx, first)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp1.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp1.JSON200).NotTo(BeNil())
				Expect(resp1.JSON200.Choices).NotTo(BeEmpty())

				assistantTurn := resp1.JSON200.Choices[0].Message

				// When: I follow up, replaying the assistant's answer
				second := openapi.ChatCompletionRequest{
					Model: config.ChatModel,
					Messages: []openapi.ChatMessage{
						{Role: openapi.ChatMessageRoleUser, Content: "What is 2 + 2?"},
						assistantTurn,
						{Role: openapi.ChatMessageRoleUser, Content: "What about 3 + 3?"},
					},
					MaxTokens:   ptr.To(50),
					Temperature: ptr.To[float32](0),
				}

				resp2, err := typed.ChatCompletionV1ChatCompletionsPostWithResponse(ctx, second)

				// Then: The conversation continues without complaint
				Expect(err).NotTo(HaveOccurred())
				Expect(resp2.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp2.JSON200).NotTo(BeNil())
				Expect(resp2.JSON200.Choices).NotTo(BeEmpty())
			})
		})

		Describe("Given a system prompt", func() {
			It("should honour the system role", func() {
				request := openapi.ChatCompletionRequest{
					Model: config.ChatModel,
					Messages: []openapi.ChatMessage{
						{Role: openapi.ChatMessageRoleSystem, Content: "You are a helpful assistant. Always respond in one word."},
						{Role: openapi.ChatMessageRoleUser, Content: "Are you ready?"},
					},
					MaxTokens:   ptr.To(20),
					Temperature: ptr.To[float32](0),
				}

				resp, err := typed.ChatCompletionV1ChatCompletionsPostWithResponse(ctx, request)

				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Choices).NotTo(BeEmpty())
			})
		})
	})

	Context("When the request is invalid", func() {
		Describe("Given an empty message list", func() {
			It("should be rejected with a validation error", func() {
				request := openapi.ChatCompletionRequest{
					Model:    config.ChatModel,
					Messages: []openapi.ChatMessage{},
				}

				resp, err := typed.ChatCompletionV1ChatCompletionsPostWithResponse(ctx, request)

				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(BeElementOf(
					http.StatusBadRequest,
					http.StatusUnprocessableEntity,
				))
			})
		})

		Describe("Given a payload with no model field", func() {
			It("should be rejected with a client error", func() {
				// The typed client cannot omit its required fields, so this
				// goes through the raw client.
				payload := api.NewChatPayload(config).
					WithModel("").
					WithMessage("user", "Hello").
					Build()

				_, status, err := client.ChatCompletion(ctx, payload)

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(BeElementOf(
					http.StatusBadRequest,
					http.StatusUnprocessableEntity,
				))
			})
		})
	})
})
