package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLabel(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		label string
		score *float64
	}{
		{"array de objetos", `[{"label":"golden retriever","score":0.92},{"label":"labrador","score":0.05}]`, "golden retriever", ptr(0.92)},
		{"string", `"beagle"`, "beagle", nil},
		{"array de strings", `["pug","boxer"]`, "pug", nil},
		{"campo directo", `{"breed":"persian"}`, "persian", nil},
		{"campo directo con score", `{"label":"husky","confidence":0.7}`, "husky", ptr(0.7)},
		{"campo directo array", `{"name":["siamese","birman"]}`, "siamese", nil},
		{"predictions", `{"predictions":[{"name":"corgi","probability":"0.5"}]}`, "corgi", ptr(0.5)},
		{"outputs", `{"outputs":[{"label":"tabby","score":0.81}]}`, "tabby", ptr(0.81)},
		{"data", `{"data":[{"label":"goldfish"}]}`, "goldfish", nil},
		{"trim", `{"label":"  beagle  "}`, "beagle", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractLabel([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.label, got.Name)
			if tt.score == nil {
				assert.Nil(t, got.Score)
				return
			}
			require.NotNil(t, got.Score)
			assert.InDelta(t, *tt.score, *got.Score, 1e-9)
		})
	}
}

func TestExtractLabel_NoLabel(t *testing.T) {
	for _, raw := range []string{``, `{}`, `[]`, `null`, `""`, `"   "`, `42`, `{"foo":"bar"}`, `[{"foo":1}]`, `{"predictions":[]}`, `not json`} {
		_, err := ExtractLabel([]byte(raw))
		assert.True(t, errors.Is(err, ErrNoLabel), "raw=%q", raw)
	}
}

func ptr(f float64) *float64 { return &f }
