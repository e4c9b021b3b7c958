package system

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const pingTimeout = 2 * time.Second

func RegisterRoutes(r chi.Router, repo Repository, lg logger.Logger) {
	r.Get("/health", healthHandler(repo, lg))
	r.Get("/tables", listTablesHandler(repo, lg))
}

type healthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

// healthHandler godoc
// @Summary Health check
// @Description El proceso responde ok aunque la base no esté disponible; el estado de la base va en `db`.
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func healthHandler(repo Repository, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		out := healthResponse{Status: "ok", DB: "ok"}
		if err := repo.Ping(ctx); err != nil {
			lg.Warn("health: db ping failed", map[string]any{"error": err})
			out.DB = "unhealthy"
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listTablesHandler godoc
// @Summary Tablas del esquema public
// @Description Endpoint de diagnóstico.
// @Tags system
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string "internal_error"
// @Router /tables [get]
func listTablesHandler(repo Repository, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables, err := repo.ListTables(r.Context())
		if err != nil {
			apperr.Write(w, r, lg, err)
			return
		}
		if tables == nil {
			tables = []string{}
		}
		writeJSON(w, http.StatusOK, tables)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
