package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"pet-identifier/internal/platform/httpclient"
	"pet-identifier/internal/ports/classifier"
)

type ReplicateConfig struct {
	BaseURL string
	APIKey  string
	// Model es "owner/name" o un version id de 64 hex.
	Model        string
	PollInterval time.Duration
	// MaxWait acota la espera total de una predicción (0 = solo el ctx).
	MaxWait time.Duration
}

var versionRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Replicate crea una predicción y hace polling de urls.get hasta un estado final.
// El output del create no se asume listo aunque se pida Prefer: wait.
type Replicate struct {
	client *httpclient.Client
	cfg    ReplicateConfig
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewReplicate arma su propio cliente con BaseURL; los paths de la API van relativos.
func NewReplicate(cfg ReplicateConfig, timeout time.Duration) (*Replicate, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, configError("REPLICATE_API_KEY missing")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, configError("REPLICATE_MODEL missing")
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, configError("REPLICATE_BASE_URL missing")
	}
	client, err := httpclient.NewWithBaseURL(cfg.BaseURL, timeout)
	if err != nil {
		return nil, configError("REPLICATE_BASE_URL: " + err.Error())
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	return &Replicate{client: client, cfg: cfg, sleep: sleepCtx}, nil
}

type prediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  any             `json:"error"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
}

type predictionRequest struct {
	Version string         `json:"version,omitempty"`
	Input   map[string]any `json:"input"`
}

func (r *Replicate) Classify(ctx context.Context, image []byte, contentType string) (classifier.Label, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if r.cfg.MaxWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.MaxWait)
		defer cancel()
	}

	dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(image)
	req := predictionRequest{Input: map[string]any{"image": dataURI}}

	model := strings.TrimSpace(r.cfg.Model)
	path := "/predictions"
	if versionRe.MatchString(model) {
		req.Version = model
	} else {
		path = "/models/" + strings.Trim(model, "/") + "/predictions"
	}

	h := bearer(r.cfg.APIKey)
	h["Prefer"] = "wait"

	var p prediction
	if err := r.client.DoJSON(ctx, http.MethodPost, path, h, req, &p); err != nil {
		return classifier.Label{}, translate(err)
	}

	for {
		switch p.Status {
		case "succeeded":
			return parseLabel(p.Output)
		case "failed", "canceled":
			return classifier.Label{}, classifier.NewError(classifier.CodeProvider,
				fmt.Sprintf("replicate prediction %s: %v", p.Status, p.Error), nil)
		}

		next := p.URLs.Get
		if next == "" {
			if p.ID == "" {
				return classifier.Label{}, classifier.NewError(classifier.CodeProvider, "replicate prediction without id", nil)
			}
			next = "/predictions/" + p.ID
		}

		if err := r.sleep(ctx, r.cfg.PollInterval); err != nil {
			return classifier.Label{}, translate(err)
		}

		p = prediction{}
		if err := r.client.DoJSON(ctx, http.MethodGet, next, bearer(r.cfg.APIKey), nil, &p); err != nil {
			return classifier.Label{}, translate(err)
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
