package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestObserver . RequestObserver
type RequestObserver interface {
	ObserveRequest(route string, code int, elapsed time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

type loggingMiddleware struct {
	logs     *zap.SugaredLogger
	observer RequestObserver
}

func NewLoggingMiddleware(logger *zap.SugaredLogger, observer RequestObserver) *loggingMiddleware {
	return &loggingMiddleware{
		logs:     logger,
		observer: observer,
	}
}

func (m *loggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		route := r.Method + " " + r.URL.Path
		if rec.code == http.StatusNotFound {
			route = "unmatched"
		}
		if m.observer != nil {
			m.observer.ObserveRequest(route, rec.code, elapsed)
		}

		requestId, _ := r.Context().Value(RequestIDKey).(string)
		m.logs.Infow("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"code", rec.code,
			"elapsed_ms", elapsed.Milliseconds(),
			"request_id", requestId)
	})
}
