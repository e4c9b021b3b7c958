package apperr

import (
	"context"
	"encoding/json"
	"net/http"

	"pet-identifier/internal/platform/logger"
)

type ctxKey struct{}

// WithTraceID guarda el trace id del request en ctx.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// TraceID devuelve el trace id del request, o "" si no hay.
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type errorBody struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// Write serializa err como {"error": code}. Los 5xx llevan trace_id y se loguean.
func Write(w http.ResponseWriter, r *http.Request, lg logger.Logger, err error) {
	status, code := Resolve(err)
	WriteCode(w, r, lg, status, code, err)
}

// WriteCode es Write con status y código ya resueltos por el caller.
func WriteCode(w http.ResponseWriter, r *http.Request, lg logger.Logger, status int, code string, cause error) {
	body := errorBody{Error: code}
	if status >= http.StatusInternalServerError {
		body.TraceID = TraceID(r.Context())
		if lg != nil {
			lg.Error("request failed", map[string]any{
				"trace_id": body.TraceID,
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   status,
				"code":     code,
				"error":    cause,
			})
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
