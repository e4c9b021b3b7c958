package session

import (
	"context"
	"testing"
	"time"

	"pet-identifier/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m, err := NewManager("secret", time.Hour)
	require.NoError(t, err)

	tok, err := m.Issue(context.Background(), auth.Claims{UserID: "42", Username: "ana"})
	require.NoError(t, err)

	c, err := m.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "42", c.UserID)
	assert.Equal(t, "ana", c.Username)
}

func TestManager_RejectsOtherSecret(t *testing.T) {
	a, _ := NewManager("a", time.Hour)
	b, _ := NewManager("b", time.Hour)

	tok, err := a.Issue(context.Background(), auth.Claims{UserID: "1"})
	require.NoError(t, err)

	_, err = b.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_RejectsExpired(t *testing.T) {
	m, _ := NewManager("secret", time.Minute)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	tok, err := m.Issue(context.Background(), auth.Claims{UserID: "1"})
	require.NoError(t, err)

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = m.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_RejectsNoneAlg(t *testing.T) {
	m, _ := NewManager("secret", time.Hour)
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer, Subject: "1"},
	})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), s)
	assert.Error(t, err)
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager("  ", time.Hour)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = newTestManager().Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func newTestManager() *Manager {
	mgr, _ := NewManager("x", 0)
	return mgr
}
