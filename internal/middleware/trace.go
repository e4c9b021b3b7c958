package middleware

import (
	"net/http"
	"strings"

	"pet-identifier/internal/platform/apperr"

	"github.com/google/uuid"
)

const TraceHeader = "X-Request-ID"

// Trace asigna un trace id por request (reusa X-Request-ID si el cliente lo manda)
// y lo devuelve en la respuesta.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(TraceHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(TraceHeader, id)
		next.ServeHTTP(w, r.WithContext(apperr.WithTraceID(r.Context(), id)))
	})
}
