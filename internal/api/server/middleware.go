package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// requestLogging tags every request with an id and logs method, path and
// duration on completion.
func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(w, r)

		localLogger.Info(r.Method, " ", r.URL.Path, " request_id=", requestID, " took ", time.Since(start))
	})
}
