package identify

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"
	"pet-identifier/internal/ports/classifier"
)

var (
	ErrMissingImage     = apperr.Invalid("missing_fields")
	ErrInvalidImageData = apperr.Invalid("invalid_image_data")
	ErrImageTooSmall    = apperr.Invalid("image_too_small")
)

const dataURIPrefix = "data:image/"

type Service struct {
	ai       classifier.ImageClassifier
	species  *Classifier
	minBytes int
	log      logger.Logger
}

func NewService(ai classifier.ImageClassifier, minBytes int, lg logger.Logger) *Service {
	if lg == nil {
		lg = logger.Noop()
	}
	return &Service{
		ai:       ai,
		species:  NewClassifier(),
		minBytes: minBytes,
		log:      lg,
	}
}

// Analyze decodifica un data URI base64, lo manda al proveedor y clasifica la etiqueta.
func (s *Service) Analyze(ctx context.Context, dataURI string) (Result, error) {
	dataURI = strings.TrimSpace(dataURI)
	if dataURI == "" {
		return Result{}, ErrMissingImage
	}

	image, contentType, err := decodeDataURI(dataURI)
	if err != nil {
		return Result{}, err
	}
	if len(image) < s.minBytes {
		return Result{}, ErrImageTooSmall
	}

	label, err := s.ai.Classify(ctx, image, contentType)
	if err != nil {
		return Result{}, err
	}

	name := strings.ToLower(strings.TrimSpace(label.Name))
	v := s.species.Classify(name)

	status := PetStatusNotPet
	if v.IsPet {
		status = PetStatusPet
	}

	s.log.Debug("photo analyzed", map[string]any{
		"label":   name,
		"is_pet":  v.IsPet,
		"species": string(v.Species),
		"bytes":   len(image),
	})

	return Result{
		Label:      name,
		Confidence: label.Score,
		IsPet:      v.IsPet,
		PetStatus:  status,
		Species:    v.Species,
	}, nil
}

// IdentifyUpload clasifica una imagen subida como archivo.
func (s *Service) IdentifyUpload(ctx context.Context, image []byte, contentType string) (UploadResult, error) {
	if len(image) == 0 {
		return UploadResult{}, ErrMissingImage
	}

	ct := strings.ToLower(strings.TrimSpace(contentType))
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(image)
	}
	if !strings.HasPrefix(ct, "image/") {
		return UploadResult{}, ErrInvalidImageData
	}
	if len(image) < s.minBytes {
		return UploadResult{}, ErrImageTooSmall
	}

	label, err := s.ai.Classify(ctx, image, ct)
	if err != nil {
		return UploadResult{}, err
	}
	return UploadResult{Breed: strings.TrimSpace(label.Name), Confidence: label.Score}, nil
}

// decodeDataURI acepta solo data:image/<tipo>[;params];base64,<payload>.
func decodeDataURI(s string) ([]byte, string, error) {
	if len(s) < len(dataURIPrefix) || !strings.EqualFold(s[:len(dataURIPrefix)], dataURIPrefix) {
		return nil, "", ErrInvalidImageData
	}
	meta, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok || !strings.HasSuffix(strings.ToLower(meta), ";base64") {
		return nil, "", ErrInvalidImageData
	}

	contentType, _, _ := strings.Cut(meta, ";")
	contentType = strings.ToLower(contentType)

	payload = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, payload)
	if payload == "" {
		return nil, "", ErrInvalidImageData
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		image, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, "", ErrInvalidImageData.Wrap(err)
		}
	}
	return image, contentType, nil
}
