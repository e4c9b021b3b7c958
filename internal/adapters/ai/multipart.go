package ai

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"pet-identifier/internal/platform/httpclient"
	"pet-identifier/internal/ports/classifier"
)

type MultipartConfig struct {
	URL    string
	APIKey string
}

// Multipart sube la imagen como form-data en el campo "image".
type Multipart struct {
	client *httpclient.Client
	cfg    MultipartConfig
}

func NewMultipart(client *httpclient.Client, cfg MultipartConfig) (*Multipart, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, configError("AI_API_URL missing")
	}
	return &Multipart{client: client, cfg: cfg}, nil
}

func (m *Multipart) Classify(ctx context.Context, image []byte, contentType string) (classifier.Label, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, "upload"+extensionFor(contentType)))
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	if err == nil {
		_, err = part.Write(image)
	}
	if err == nil {
		err = w.Close()
	}
	if err != nil {
		return classifier.Label{}, classifier.NewError(classifier.CodeProvider, "encode multipart", err)
	}

	h := bearer(m.cfg.APIKey)
	h["Content-Type"] = w.FormDataContentType()

	raw, err := m.client.Do(ctx, http.MethodPost, m.cfg.URL, h, &buf)
	if err != nil {
		return classifier.Label{}, translate(err)
	}
	return parseLabel(raw)
}

func extensionFor(contentType string) string {
	exts, _ := mime.ExtensionsByType(contentType)
	if len(exts) == 0 {
		return ""
	}
	return exts[0]
}
