//nolint:testpackage,revive // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error Handling and Edge Cases", func() {
	Context("When requests cannot be satisfied", func() {
		Describe("Given an unbound path", func() {
			It("should return 404 without breaking the transport", func() {
				resp, _, err := client.Do(ctx, http.MethodGet, "/v1/does-not-exist", nil)

				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			})
		})

		Describe("Given a syntactically broken JSON body", func() {
			It("should be rejected with a client error", func() {
				resp, _, err := client.Do(ctx, http.MethodPost, "/v1/chat/completions", strings.NewReader(`{"model": `))

				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeNumerically(">=", http.StatusBadRequest))
				Expect(resp.StatusCode).To(BeNumerically("<", http.StatusInternalServerError))
			})
		})

		Describe("Given a wrong HTTP method", func() {
			It("should reject a POST against the model listing", func() {
				resp, _, err := client.Do(ctx, http.MethodPost, "/v1/models", strings.NewReader(`{}`))

				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeElementOf(
					http.StatusMethodNotAllowed,
					http.StatusNotFound,
					http.StatusUnprocessableEntity,
				))
			})
		})
	})
})
