package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel("error"))
	assert.Equal(t, Info, ParseLevel("nope"))
}

func TestJSONLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "pets", Output: &buf})

	l.With(map[string]any{"request_id": "r1"}).Info("hello", map[string]any{
		"status": 200,
		"err":    errors.New("boom"),
		"":       "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "pets", entry["app"])
	assert.Equal(t, "r1", entry["request_id"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "boom", entry["err"])
	_, hasEmpty := entry[""]
	assert.False(t, hasEmpty)
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Info("skip me", nil)
	l.Warn("keep me", nil)

	out := buf.String()
	assert.False(t, strings.Contains(out, "skip me"))
	assert.True(t, strings.Contains(out, "keep me"))
}
