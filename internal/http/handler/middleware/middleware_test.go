package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"vearn/internal/http/handler/middleware"
	"vearn/internal/http/handler/middleware/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		fakeObserver *fake.RequestObserver
		seenID       string
		next         http.Handler
		hdlr         http.Handler
		w            *httptest.ResponseRecorder
		req          *http.Request
	)

	BeforeEach(func() {
		seenID = ""
		fakeObserver = new(fake.RequestObserver)
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/vearn/balance", nil)
	})

	JustBeforeEach(func() {
		hdlr = middleware.NewLoggingMiddleware(zap.NewNop().Sugar(), fakeObserver).Logging(next)
		hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
		hdlr.ServeHTTP(w, req)
	})

	It("assigns a request id", func() {
		Expect(seenID).NotTo(BeEmpty())
		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenID))
	})

	It("records the request", func() {
		Expect(w.Code).To(Equal(http.StatusTeapot))
		Expect(fakeObserver.ObserveRequestCallCount()).To(Equal(1))
		route, code, _ := fakeObserver.ObserveRequestArgsForCall(0)
		Expect(route).To(Equal("GET /vearn/balance"))
		Expect(code).To(Equal(http.StatusTeapot))
	})

	When("the caller sends a request id", func() {
		BeforeEach(func() {
			req.Header.Set(middleware.RequestIDHeader, "abc")
		})

		It("keeps it", func() {
			Expect(seenID).To(Equal("abc"))
		})
	})

	When("no route matches", func() {
		BeforeEach(func() {
			next = http.NotFoundHandler()
		})

		It("groups the request as unmatched", func() {
			route, code, _ := fakeObserver.ObserveRequestArgsForCall(0)
			Expect(route).To(Equal("unmatched"))
			Expect(code).To(Equal(http.StatusNotFound))
		})
	})
})
