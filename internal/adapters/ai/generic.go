package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"pet-identifier/internal/platform/httpclient"
	"pet-identifier/internal/ports/classifier"
)

type GenericConfig struct {
	URL    string
	APIKey string
	Model  string
}

// Generic envía la imagen como JSON+base64 a un endpoint de inferencia propio.
type Generic struct {
	client *httpclient.Client
	cfg    GenericConfig
}

func NewGeneric(client *httpclient.Client, cfg GenericConfig) (*Generic, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, configError("AI_API_URL missing")
	}
	return &Generic{client: client, cfg: cfg}, nil
}

type genericRequest struct {
	Image       string `json:"image"`
	ContentType string `json:"content_type,omitempty"`
	Model       string `json:"model,omitempty"`
}

func (g *Generic) Classify(ctx context.Context, image []byte, contentType string) (classifier.Label, error) {
	body, err := json.Marshal(genericRequest{
		Image:       base64.StdEncoding.EncodeToString(image),
		ContentType: contentType,
		Model:       strings.TrimSpace(g.cfg.Model),
	})
	if err != nil {
		return classifier.Label{}, classifier.NewError(classifier.CodeProvider, "encode request", err)
	}

	h := bearer(g.cfg.APIKey)
	h["Content-Type"] = "application/json"

	raw, err := g.client.Do(ctx, http.MethodPost, g.cfg.URL, h, bytes.NewReader(body))
	if err != nil {
		return classifier.Label{}, translate(err)
	}
	return parseLabel(raw)
}
