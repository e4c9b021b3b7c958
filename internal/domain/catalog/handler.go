package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, lg logger.Logger) {
	r.Get("/categories", listCategoriesHandler(svc, lg))
	r.Get("/breeds", listBreedsHandler(svc, lg))
	r.Get("/breeds/by-category", breedsByCategoryHandler(svc, lg))
	r.Get("/curiosidades", listCuriosidadesHandler(svc, lg))
}

type categoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type breedResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ScientificName  string `json:"scientific_name"`
	Description     string `json:"description"`
	DefaultImageURL string `json:"default_image_url"`
	CategoryID      int64  `json:"category_id"`
	CategoryName    string `json:"category_name"`
}

type curiosidadResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	Tags      []string  `json:"tags"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
}

// listCategoriesHandler godoc
// @Summary Listar categorías
// @Tags catalog
// @Produce json
// @Success 200 {array} categoryResponse
// @Router /api/categories [get]
func listCategoriesHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Categories(r.Context())
		if err != nil {
			apperr.Write(w, r, lg, err)
			return
		}
		out := make([]categoryResponse, 0, len(items))
		for _, c := range items {
			out = append(out, categoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listBreedsHandler godoc
// @Summary Listar razas
// @Description Filtra por `category`: id numérico o nombre (sin distinguir mayúsculas).
// @Tags catalog
// @Produce json
// @Param category query string false "ID o nombre de la categoría"
// @Success 200 {array} breedResponse
// @Router /api/breeds [get]
func listBreedsHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Breeds(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			apperr.Write(w, r, lg, err)
			return
		}
		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, breedResponse{
				ID:              b.ID,
				Name:            b.Name,
				ScientificName:  b.ScientificName,
				Description:     b.Description,
				DefaultImageURL: b.DefaultImageURL,
				CategoryID:      b.CategoryID,
				CategoryName:    b.CategoryName,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// breedsByCategoryHandler godoc
// @Summary Razas agrupadas por categoría
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/breeds/by-category [get]
func breedsByCategoryHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.BreedsByCategory(r.Context())
		if err != nil {
			apperr.Write(w, r, lg, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listCuriosidadesHandler godoc
// @Summary Listar curiosidades visibles
// @Tags catalog
// @Produce json
// @Success 200 {array} curiosidadResponse
// @Router /api/curiosidades [get]
func listCuriosidadesHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Curiosidades(r.Context())
		if err != nil {
			apperr.Write(w, r, lg, err)
			return
		}
		out := make([]curiosidadResponse, 0, len(items))
		for _, c := range items {
			tags := c.Tags
			if tags == nil {
				tags = []string{}
			}
			out = append(out, curiosidadResponse{
				ID:        c.ID,
				Title:     c.Title,
				Content:   c.Content,
				ImageURL:  c.ImageURL,
				Tags:      tags,
				Visible:   c.Visible,
				CreatedAt: c.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
