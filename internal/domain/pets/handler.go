package pets

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-identifier/internal/middleware"
	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, lg logger.Logger) {
	r.Post("/save-pet", savePetHandler(svc, lg))
	r.Post("/delete-pet", deletePetHandler(svc, lg))
	r.Get("/pets", listPetsHandler(svc, lg))
}

// idField acepta 7 o "7". Present distingue "no enviado" de "inválido".
type idField struct {
	Value   int64
	Present bool
	Valid   bool
}

func (f *idField) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = idField{}
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	f.Present = s != ""
	n, err := strconv.ParseInt(s, 10, 64)
	f.Value = n
	f.Valid = err == nil && n > 0
	return nil
}

func parseID(s string) idField {
	s = strings.TrimSpace(s)
	if s == "" {
		return idField{}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return idField{Value: n, Present: true, Valid: err == nil && n > 0}
}

type savePetRequest struct {
	Name        string  `json:"name"`
	Breed       string  `json:"breed"`
	Description string  `json:"description"`
	UserID      idField `json:"user_id" swaggertype:"integer"`
}

type savePetResponse struct {
	PetID int64 `json:"pet_id"`
}

type deletePetRequest struct {
	PetID  idField `json:"pet_id" swaggertype:"integer"`
	UserID idField `json:"user_id" swaggertype:"integer"`
}

type petResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type listPetsResponse struct {
	Pets []petResponse `json:"pets"`
}

// savePetHandler godoc
// @Summary Guardar mascota
// @Description Guarda una mascota en la lista del usuario. Con JWT_SECRET configurado exige `Authorization: Bearer <token>` del mismo usuario.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token (si el server tiene JWT_SECRET)"
// @Param payload body savePetRequest true "Mascota"
// @Success 201 {object} savePetResponse
// @Failure 400 {object} map[string]string "missing_fields / invalid_name / invalid_breed / invalid_description / invalid_user_id"
// @Failure 401 {object} map[string]string "unauthorized"
// @Failure 403 {object} map[string]string "forbidden"
// @Failure 404 {object} map[string]string "user_not_found"
// @Router /api/save-pet [post]
func savePetHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req savePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperr.Write(w, r, lg, apperr.BadBody(err))
			return
		}
		if strings.TrimSpace(req.Name) == "" || !req.UserID.Present {
			apperr.Write(w, r, lg, ErrMissingFields)
			return
		}
		if !req.UserID.Valid {
			apperr.Write(w, r, lg, ErrInvalidUserID)
			return
		}
		if err := middleware.Authorize(r.Context(), req.UserID.Value); err != nil {
			apperr.Write(w, r, lg, err)
			return
		}

		p, err := svc.Save(r.Context(), SaveInput{
			Name:        req.Name,
			Breed:       req.Breed,
			Description: req.Description,
			UserID:      req.UserID.Value,
		})
		if err != nil {
			apperr.Write(w, r, lg, err)
			return
		}

		writeJSON(w, http.StatusCreated, savePetResponse{PetID: p.ID})
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota solo si pertenece a `user_id`. Si no existe o es de otro usuario responde 404.
// @Tags pets
// @Accept json
// @Param Authorization header string false "Bearer token (si el server tiene JWT_SECRET)"
// @Param payload body deletePetRequest true "Mascota y dueño"
// @Success 204
// @Failure 400 {object} map[string]string "missing_fields / invalid_pet_id / invalid_user_id"
// @Failure 401 {object} map[string]string "unauthorized"
// @Failure 403 {object} map[string]string "forbidden"
// @Failure 404 {object} map[string]string "pet_not_found"
// @Router /api/delete-pet [post]
func deletePetHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deletePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperr.Write(w, r, lg, apperr.BadBody(err))
			return
		}
		if !req.PetID.Present || !req.UserID.Present {
			apperr.Write(w, r, lg, ErrMissingFields)
			return
		}
		if !req.PetID.Valid {
			apperr.Write(w, r, lg, ErrInvalidPetID)
			return
		}
		if !req.UserID.Valid {
			apperr.Write(w, r, lg, ErrInvalidUserID)
			return
		}
		if err := middleware.Authorize(r.Context(), req.UserID.Value); err != nil {
			apperr.Write(w, r, lg, err)
			return
		}

		if err := svc.Delete(r.Context(), req.PetID.Value, req.UserID.Value); err != nil {
			apperr.Write(w, r, lg, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas del usuario
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token (si el server tiene JWT_SECRET)"
// @Param user_id query int true "ID del usuario"
// @Success 200 {object} listPetsResponse
// @Failure 400 {object} map[string]string "missing_fields / invalid_user_id"
// @Failure 401 {object} map[string]string "unauthorized"
// @Failure 403 {object} map[string]string "forbidden"
// @Router /api/pets [get]
func listPetsHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := parseID(r.URL.Query().Get("user_id"))
		if !uid.Present {
			apperr.Write(w, r, lg, ErrMissingFields)
			return
		}
		if !uid.Valid {
			apperr.Write(w, r, lg, ErrInvalidUserID)
			return
		}
		if err := middleware.Authorize(r.Context(), uid.Value); err != nil {
			apperr.Write(w, r, lg, err)
			return
		}

		items, err := svc.ListByUser(r.Context(), uid.Value)
		if err != nil {
			apperr.Write(w, r, lg, err)
			return
		}

		out := listPetsResponse{Pets: make([]petResponse, 0, len(items))}
		for _, p := range items {
			out.Pets = append(out.Pets, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Breed:       p.Breed,
		Description: p.Description,
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
