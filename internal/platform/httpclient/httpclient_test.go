package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"a":1}`, string(b))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second)
	require.NoError(t, err)

	var out struct {
		OK bool `json:"ok"`
	}
	err = c.DoJSON(context.Background(), http.MethodPost, "/x", map[string]string{"Authorization": "Bearer k"}, map[string]int{"a": 1}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestDo_Non2xxReturnsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("  loading model  "))
	}))
	defer srv.Close()

	_, err := New(time.Second).Do(context.Background(), http.MethodPost, srv.URL, nil, strings.NewReader("x"))
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusServiceUnavailable, he.StatusCode)
	assert.Equal(t, "loading model", he.Body)
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(time.Second).Do(context.Background(), http.MethodGet, url, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestResolveURL_RelativeWithoutBase(t *testing.T) {
	_, err := New(0).Do(context.Background(), http.MethodGet, "/relative", nil, nil)
	require.Error(t, err)
}
