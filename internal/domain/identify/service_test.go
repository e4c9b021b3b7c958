package identify

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"pet-identifier/internal/platform/logger"
	"pet-identifier/internal/ports/classifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAI struct {
	label       classifier.Label
	err         error
	calls       int
	gotImage    []byte
	gotMimeType string
}

func (f *fakeAI) Classify(_ context.Context, image []byte, contentType string) (classifier.Label, error) {
	f.calls++
	f.gotImage = image
	f.gotMimeType = contentType
	return f.label, f.err
}

func score(v float64) *float64 { return &v }

// pngBytes devuelve n bytes con cabecera PNG para que DetectContentType la reconozca.
func pngBytes(n int) []byte {
	b := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x42}, n)...)
	return b[:n]
}

func dataURI(mime string, b []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b)
}

func TestService_Analyze(t *testing.T) {
	ai := &fakeAI{label: classifier.Label{Name: "  Golden Retriever ", Score: score(0.92)}}
	svc := NewService(ai, 16, logger.Noop())

	res, err := svc.Analyze(context.Background(), dataURI("image/jpeg", pngBytes(32)))
	require.NoError(t, err)

	assert.Equal(t, "golden retriever", res.Label)
	assert.True(t, res.IsPet)
	assert.Equal(t, PetStatusPet, res.PetStatus)
	assert.Equal(t, SpeciesDog, res.Species)
	require.NotNil(t, res.Confidence)
	assert.InDelta(t, 0.92, *res.Confidence, 1e-9)
	assert.Equal(t, "image/jpeg", ai.gotMimeType)
	assert.Len(t, ai.gotImage, 32)
}

func TestService_Analyze_NotPet(t *testing.T) {
	svc := NewService(&fakeAI{label: classifier.Label{Name: "airplane"}}, 0, nil)

	res, err := svc.Analyze(context.Background(), dataURI("image/png", pngBytes(8)))
	require.NoError(t, err)
	assert.False(t, res.IsPet)
	assert.Equal(t, PetStatusNotPet, res.PetStatus)
	assert.Equal(t, SpeciesNone, res.Species)
	assert.Nil(t, res.Confidence)
}

func TestService_Analyze_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"vacío", "  ", ErrMissingImage},
		{"sin prefijo", "aGVsbG8=", ErrInvalidImageData},
		{"no es imagen", "data:text/plain;base64,aGVsbG8=", ErrInvalidImageData},
		{"sin base64", "data:image/png,abc", ErrInvalidImageData},
		{"payload vacío", "data:image/png;base64,", ErrInvalidImageData},
		{"base64 roto", "data:image/png;base64,@@@@", ErrInvalidImageData},
		{"muy chica", dataURI("image/png", []byte("tiny")), ErrImageTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &fakeAI{label: classifier.Label{Name: "beagle"}}
			svc := NewService(ai, 16, nil)

			_, err := svc.Analyze(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, ai.calls)
		})
	}
}

func TestService_Analyze_PropagatesProviderError(t *testing.T) {
	cause := classifier.NewError(classifier.CodeProvider, "AI provider error: 503", nil)
	svc := NewService(&fakeAI{err: cause}, 0, nil)

	_, err := svc.Analyze(context.Background(), dataURI("image/png", pngBytes(8)))
	assert.Equal(t, classifier.CodeProvider, classifier.CodeOf(err))
}

func TestService_IdentifyUpload(t *testing.T) {
	ai := &fakeAI{label: classifier.Label{Name: " Persian cat ", Score: score(0.5)}}
	svc := NewService(ai, 16, nil)

	res, err := svc.IdentifyUpload(context.Background(), pngBytes(32), "")
	require.NoError(t, err)
	assert.Equal(t, "Persian cat", res.Breed)
	assert.Equal(t, "image/png", ai.gotMimeType)

	_, err = svc.IdentifyUpload(context.Background(), nil, "image/png")
	assert.ErrorIs(t, err, ErrMissingImage)

	_, err = svc.IdentifyUpload(context.Background(), []byte("plain text file, definitely not an image"), "text/plain")
	assert.ErrorIs(t, err, ErrInvalidImageData)

	_, err = svc.IdentifyUpload(context.Background(), pngBytes(10), "image/png")
	assert.ErrorIs(t, err, ErrImageTooSmall)
}
