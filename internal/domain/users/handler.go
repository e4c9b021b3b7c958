package users

import (
	"encoding/json"
	"net/http"
	"time"

	"pet-identifier/internal/middleware"
	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, lg logger.Logger) {
	r.Post("/login", loginHandler(svc, lg))
	r.Post("/register", registerHandler(svc, lg))

	// Alias usados por el frontend.
	r.Post("/auth/login", loginHandler(svc, lg))
	r.Post("/auth/register", registerHandler(svc, lg))

	r.Get("/users", listUsersHandler(svc, lg))
}

type registerRequest struct {
	Email              string `json:"email"`
	Username           string `json:"username"`
	PasswordHashClient string `json:"password_hash_client"`
}

type loginRequest struct {
	Username           string `json:"username"`
	PasswordHashClient string `json:"password_hash_client"`
}

type sessionResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description `password_hash_client` es el SHA-256 hex (64 caracteres) de la contraseña calculado en el cliente. Si el server tiene JWT_SECRET, la respuesta incluye `token`.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de registro"
// @Success 201 {object} sessionResponse
// @Failure 400 {object} map[string]string "missing_fields / invalid_email / invalid_username / invalid_password_hash"
// @Failure 409 {object} map[string]string "user_exists"
// @Router /api/register [post]
func registerHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperr.Write(w, r, lg, apperr.BadBody(err))
			return
		}

		s, err := svc.Register(r.Context(), RegisterInput{
			Email:              req.Email,
			Username:           req.Username,
			PasswordHashClient: req.PasswordHashClient,
		})
		if err != nil {
			apperr.Write(w, r, lg, err)
			return
		}

		writeJSON(w, http.StatusCreated, toSessionResponse(s))
	}
}

// loginHandler godoc
// @Summary Login
// @Tags users
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} map[string]string "missing_fields / invalid_password_hash"
// @Failure 401 {object} map[string]string "invalid_credentials"
// @Router /api/login [post]
func loginHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperr.Write(w, r, lg, apperr.BadBody(err))
			return
		}

		s, err := svc.Login(r.Context(), LoginInput{
			Username:           req.Username,
			PasswordHashClient: req.PasswordHashClient,
		})
		if err != nil {
			apperr.Write(w, r, lg, err)
			return
		}

		writeJSON(w, http.StatusOK, toSessionResponse(s))
	}
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Description Con JWT_SECRET configurado exige una sesión válida.
// @Tags users
// @Produce json
// @Param Authorization header string false "Bearer token (si el server tiene JWT_SECRET)"
// @Success 200 {array} userResponse
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /api/users [get]
func listUsersHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := middleware.Authenticated(r.Context()); err != nil {
			apperr.Write(w, r, lg, err)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			apperr.Write(w, r, lg, err)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, userResponse{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toSessionResponse(s Session) sessionResponse {
	return sessionResponse{ID: s.User.ID, Name: s.User.Name, Token: s.Token}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
