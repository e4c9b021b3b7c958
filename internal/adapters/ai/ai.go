// Package ai implementa classifier.ImageClassifier contra los proveedores
// de inferencia soportados. El proveedor se elige con AI_PROVIDER.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-identifier/internal/config"
	"pet-identifier/internal/platform/httpclient"
	"pet-identifier/internal/ports/classifier"
)

const (
	ProviderGeneric     = "generic"
	ProviderMultipart   = "multipart"
	ProviderHuggingFace = "huggingface"
	ProviderReplicate   = "replicate"
)

// New construye el adapter del proveedor configurado.
// Los errores de configuración salen como *classifier.Error con código config.
func New(cfg config.AI) (classifier.ImageClassifier, error) {
	client := httpclient.New(cfg.Timeout)

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderGeneric, "":
		return NewGeneric(client, GenericConfig{URL: cfg.APIURL, APIKey: cfg.APIKey, Model: cfg.Model})
	case ProviderMultipart:
		return NewMultipart(client, MultipartConfig{URL: cfg.APIURL, APIKey: cfg.APIKey})
	case ProviderHuggingFace:
		return NewHuggingFace(client, HuggingFaceConfig{BaseURL: cfg.HFBaseURL, Token: cfg.HFToken, Model: cfg.Model})
	case ProviderReplicate:
		return NewReplicate(ReplicateConfig{
			BaseURL:      cfg.ReplicateBaseURL,
			APIKey:       cfg.ReplicateAPIKey,
			Model:        cfg.ReplicateModel,
			PollInterval: cfg.ReplicatePollInterval,
			MaxWait:      cfg.Timeout,
		}, cfg.Timeout)
	default:
		return nil, classifier.NewError(classifier.CodeConfig, fmt.Sprintf("unknown AI_PROVIDER %q", cfg.Provider), nil)
	}
}

// Unavailable devuelve un clasificador que siempre falla con err.
// Permite arrancar el server con el proveedor mal configurado.
func Unavailable(err error) classifier.ImageClassifier {
	return unavailable{err: err}
}

type unavailable struct{ err error }

func (u unavailable) Classify(context.Context, []byte, string) (classifier.Label, error) {
	return classifier.Label{}, u.err
}

func configError(msg string) error {
	return classifier.NewError(classifier.CodeConfig, msg, nil)
}

// translate mapea errores del httpclient a la taxonomía de classifier.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var ce *classifier.Error
	if errors.As(err, &ce) {
		return err
	}
	if errors.Is(err, httpclient.ErrTransport) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return classifier.NewError(classifier.CodeNetwork, "AI provider unreachable", err)
	}
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		return classifier.NewError(classifier.CodeProvider, fmt.Sprintf("AI provider error: %d", he.StatusCode), err)
	}
	return classifier.NewError(classifier.CodeProvider, "AI provider error", err)
}

func parseLabel(raw []byte) (classifier.Label, error) {
	l, err := ExtractLabel(raw)
	if err != nil {
		return classifier.Label{}, classifier.NewError(classifier.CodeNoLabel, "no label found in AI response", err)
	}
	return l, nil
}

func bearer(token string) map[string]string {
	h := map[string]string{}
	if t := strings.TrimSpace(token); t != "" {
		h["Authorization"] = "Bearer " + t
	}
	return h
}
