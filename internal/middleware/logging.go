package middleware

import (
	"net/http"
	"time"

	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog escribe una línea por request.
func RequestLog(lg logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"trace_id":    apperr.TraceID(r.Context()),
				"remote":      r.RemoteAddr,
			}
			if status >= http.StatusInternalServerError {
				lg.Warn("http request", fields)
				return
			}
			lg.Info("http request", fields)
		})
	}
}
