package identify

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"
	"pet-identifier/internal/ports/classifier"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes coincide con el límite de body del router.
const maxUploadBytes = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service, lg logger.Logger) {
	r.Post("/analyze-photo", analyzePhotoHandler(svc, lg))
	r.Post("/identify", identifyHandler(svc, lg))
}

type analyzePhotoRequest struct {
	ImageBase64 string `json:"image_base64"`
	// Alias aceptado por clientes viejos.
	Image string `json:"image,omitempty"`
}

type analyzePhotoResponse struct {
	Result     string   `json:"result"`
	Confidence *float64 `json:"confidence"`
	IsPet      bool     `json:"isPet"`
	PetStatus  string   `json:"petStatus"`
	Species    *string  `json:"species"`
}

type identifyResponse struct {
	Breed      string   `json:"breed"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// analyzePhotoHandler godoc
// @Summary Analizar foto
// @Description Recibe una imagen como data URI base64 (`data:image/...;base64,...`), la clasifica con el proveedor de IA configurado y decide si es una mascota y si es perro o gato.
// @Tags identify
// @Accept json
// @Produce json
// @Param payload body analyzePhotoRequest true "Imagen en data URI"
// @Success 200 {object} analyzePhotoResponse
// @Failure 400 {object} map[string]string "missing_fields / invalid_image_data / image_too_small"
// @Failure 500 {object} map[string]string "config / no_label"
// @Failure 502 {object} map[string]string "provider / network"
// @Router /api/analyze-photo [post]
func analyzePhotoHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzePhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, lg, apperr.BadBody(err))
			return
		}

		uri := req.ImageBase64
		if uri == "" {
			uri = req.Image
		}

		res, err := svc.Analyze(r.Context(), uri)
		if err != nil {
			writeError(w, r, lg, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnalyzeResponse(res))
	}
}

// identifyHandler godoc
// @Summary Identificar raza (multipart)
// @Description Sube una imagen en el campo `image` y devuelve la etiqueta del proveedor.
// @Tags identify
// @Accept mpfd
// @Produce json
// @Param image formData file true "Imagen"
// @Success 200 {object} identifyResponse
// @Failure 400 {object} map[string]string "missing_fields / invalid_image_data / image_too_small"
// @Failure 500 {object} map[string]string "config / no_label"
// @Failure 502 {object} map[string]string "provider / network"
// @Router /api/identify [post]
func identifyHandler(svc *Service, lg logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				writeError(w, r, lg, apperr.BadBody(err))
				return
			}
			writeError(w, r, lg, ErrMissingImage.Wrap(err))
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		f, fh, err := r.FormFile("image")
		if err != nil {
			writeError(w, r, lg, ErrMissingImage.Wrap(err))
			return
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			writeError(w, r, lg, err)
			return
		}

		res, err := svc.IdentifyUpload(r.Context(), data, fh.Header.Get("Content-Type"))
		if err != nil {
			writeError(w, r, lg, err)
			return
		}

		writeJSON(w, http.StatusOK, identifyResponse{Breed: res.Breed, Confidence: res.Confidence})
	}
}

func toAnalyzeResponse(res Result) analyzePhotoResponse {
	out := analyzePhotoResponse{
		Result:     res.Label,
		Confidence: res.Confidence,
		IsPet:      res.IsPet,
		PetStatus:  res.PetStatus,
	}
	if res.Species != SpeciesNone {
		s := string(res.Species)
		out.Species = &s
	}
	return out
}

// writeError agrega el mapeo de errores del proveedor de IA al de apperr.
func writeError(w http.ResponseWriter, r *http.Request, lg logger.Logger, err error) {
	if code := classifier.CodeOf(err); code != "" {
		apperr.Write(w, r, lg, classifierError(code).Wrap(err))
		return
	}
	apperr.Write(w, r, lg, err)
}

// classifierError: red y proveedor son 502; config y no_label, 500.
func classifierError(c classifier.Code) *apperr.Error {
	switch c {
	case classifier.CodeNetwork, classifier.CodeProvider:
		return apperr.New(apperr.KindUpstream, string(c))
	default:
		return apperr.New(apperr.KindInternal, string(c))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
