package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"pet-identifier/internal/ports/classifier"
)

// ErrNoLabel: la respuesta se parseó pero no trae ningún campo usable.
var ErrNoLabel = errors.New("no label in provider response")

var (
	labelKeys       = []string{"label", "name"}
	directKeys      = []string{"breed", "label", "name"}
	scoreKeys       = []string{"score", "confidence", "probability"}
	predictionsKeys = []string{"predictions", "outputs", "results", "data"}
)

// ExtractLabel interpreta las distintas formas de respuesta de los proveedores.
// Gana la primera forma reconocida:
//   - "texto"
//   - [{label, score}, ...] (o ["texto", ...]); se toma el elemento 0
//   - {breed|label|name: ..., score?: ...}
//   - {predictions|outputs|results|data: [{label|name, score|confidence|probability}]}
func ExtractLabel(raw []byte) (classifier.Label, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return classifier.Label{}, ErrNoLabel
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return classifier.Label{}, ErrNoLabel
	}

	if l, ok := fromValue(v); ok {
		return l, nil
	}
	return classifier.Label{}, ErrNoLabel
}

func fromValue(v any) (classifier.Label, bool) {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return classifier.Label{Name: s}, true
		}
	case []any:
		if len(t) > 0 {
			return fromElement(t[0])
		}
	case map[string]any:
		if name, ok := stringFromKeys(t, directKeys); ok {
			return classifier.Label{Name: name, Score: numberFromKeys(t, scoreKeys)}, true
		}
		for _, k := range predictionsKeys {
			arr, ok := t[k].([]any)
			if !ok || len(arr) == 0 {
				continue
			}
			if l, ok := fromElement(arr[0]); ok {
				return l, true
			}
		}
	}
	return classifier.Label{}, false
}

func fromElement(v any) (classifier.Label, bool) {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return classifier.Label{Name: s}, true
		}
	case map[string]any:
		if name, ok := stringFromKeys(t, labelKeys); ok {
			return classifier.Label{Name: name, Score: numberFromKeys(t, scoreKeys)}, true
		}
	}
	return classifier.Label{}, false
}

func stringFromKeys(o map[string]any, keys []string) (string, bool) {
	for _, k := range keys {
		switch v := o[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s, true
			}
		case []any:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok && strings.TrimSpace(s) != "" {
					return strings.TrimSpace(s), true
				}
			}
		}
	}
	return "", false
}

func numberFromKeys(o map[string]any, keys []string) *float64 {
	for _, k := range keys {
		switch v := o[k].(type) {
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return &f
			}
		case float64:
			f := v
			return &f
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return &f
			}
		}
	}
	return nil
}
