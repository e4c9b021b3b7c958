package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"
	"pet-identifier/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct{}

func (fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token == "good-7" {
		return auth.Claims{UserID: "7", Username: "ana"}, nil
	}
	return auth.Claims{}, errors.New("bad token")
}

func TestTrace_GeneratesAndEchoesID(t *testing.T) {
	var seen string
	h := Trace(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = apperr.TraceID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(TraceHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, "abc")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "abc", seen)
}

func TestRecover_Returns500WithTraceID(t *testing.T) {
	h := Trace(Recover(logger.Noop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body["error"])
	assert.Equal(t, rec.Header().Get(TraceHeader), body["trace_id"])
}

func TestAuthorize(t *testing.T) {
	run := func(v auth.AuthVerifier, header string, userID int64) error {
		var got error
		h := AuthContext(v)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = Authorize(r.Context(), userID)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		return got
	}

	t.Run("modo dev confía en user_id", func(t *testing.T) {
		assert.NoError(t, run(nil, "", 7))
	})
	t.Run("sin token", func(t *testing.T) {
		assert.ErrorIs(t, run(fakeVerifier{}, "", 7), ErrUnauthorized)
	})
	t.Run("token inválido", func(t *testing.T) {
		assert.ErrorIs(t, run(fakeVerifier{}, "Bearer nope", 7), ErrUnauthorized)
	})
	t.Run("otro usuario", func(t *testing.T) {
		assert.ErrorIs(t, run(fakeVerifier{}, "Bearer good-7", 8), ErrForbidden)
	})
	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, run(fakeVerifier{}, "bearer good-7", 7))
	})
}

func TestAuthenticated(t *testing.T) {
	run := func(v auth.AuthVerifier, header string) error {
		var got error
		h := AuthContext(v)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = Authenticated(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		return got
	}

	assert.NoError(t, run(nil, ""))
	assert.ErrorIs(t, run(fakeVerifier{}, ""), ErrUnauthorized)
	assert.ErrorIs(t, run(fakeVerifier{}, "Bearer nope"), ErrUnauthorized)
	assert.NoError(t, run(fakeVerifier{}, "Bearer good-7"))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}
