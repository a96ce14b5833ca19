package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"time"
	"vearn/internal/metrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	It("exposes recorded values in the text format", func() {
		registry := metrics.NewRegistry()
		registry.ObserveTransaction("confirmed")
		registry.ObserveTransaction("confirmed")
		registry.ObserveTransaction("reverted")
		registry.ObserveConfirmation("confirmed", 12*time.Second)
		registry.ObserveRequest("/vearn/balance", http.StatusOK, 3*time.Millisecond)

		rec := httptest.NewRecorder()
		registry.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		body := rec.Body.String()
		Expect(body).To(ContainSubstring(`vearn_transactions_total{state="confirmed"} 2`))
		Expect(body).To(ContainSubstring(`vearn_transactions_total{state="reverted"} 1`))
		Expect(body).To(ContainSubstring(`vearn_transaction_confirm_seconds_count{state="confirmed"} 1`))
		Expect(body).To(ContainSubstring(`vearn_http_requests_total{code="200",route="/vearn/balance"} 1`))
	})
})
