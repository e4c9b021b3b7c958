package ai

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"pet-identifier/internal/platform/httpclient"
	"pet-identifier/internal/ports/classifier"
)

// DefaultHuggingFaceModel se usa si AI_MODEL viene vacío.
const DefaultHuggingFaceModel = "google/vit-base-patch16-224"

type HuggingFaceConfig struct {
	BaseURL string
	Token   string
	Model   string
}

// HuggingFace hace POST binario a {BaseURL}/{Model}.
// Responde [{label, score}, ...] ordenado por score.
type HuggingFace struct {
	client *httpclient.Client
	url    string
	token  string
}

func NewHuggingFace(client *httpclient.Client, cfg HuggingFaceConfig) (*HuggingFace, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, configError("HF_TOKEN missing")
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, configError("HF_BASE_URL missing")
	}
	model := strings.Trim(strings.TrimSpace(cfg.Model), "/")
	if model == "" {
		model = DefaultHuggingFaceModel
	}
	return &HuggingFace{client: client, url: base + "/" + model, token: cfg.Token}, nil
}

func (h *HuggingFace) Classify(ctx context.Context, image []byte, contentType string) (classifier.Label, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	hdr := bearer(h.token)
	hdr["Content-Type"] = contentType

	raw, err := h.client.Do(ctx, http.MethodPost, h.url, hdr, bytes.NewReader(image))
	if err != nil {
		return classifier.Label{}, translate(err)
	}
	return parseLabel(raw)
}
