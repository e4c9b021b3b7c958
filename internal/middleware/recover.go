package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"
)

// Recover convierte un panic en 500 {"error":"internal_error","trace_id":...}.
// Va después de Trace para que el id ya esté en el contexto.
func Recover(lg logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				lg.Error("panic recovered", map[string]any{
					"trace_id": apperr.TraceID(r.Context()),
					"panic":    fmt.Sprint(rec),
					"stack":    string(debug.Stack()),
				})
				apperr.WriteCode(w, r, nil, http.StatusInternalServerError, apperr.CodeInternal, nil)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
