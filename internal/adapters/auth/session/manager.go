package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-identifier/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = errors.New("session: secret not configured")
	ErrTokenEmpty    = errors.New("session: token is empty")
	ErrTokenInvalid  = errors.New("session: token is invalid")
)

const issuer = "pet-identifier"

// Claims del token de sesión. El subject es el id numérico del usuario.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"name"`
}

// Manager firma y verifica tokens HS256.
// Implementa auth.AuthVerifier y auth.TokenIssuer.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNotConfigured
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *Manager) Issue(_ context.Context, c auth.Claims) (string, error) {
	if strings.TrimSpace(c.UserID) == "" {
		return "", errors.New("session: missing user id")
	}
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Username: c.Username,
	})

	s, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return s, nil
}

func (m *Manager) Verify(_ context.Context, tokenString string) (auth.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return auth.Claims{}, ErrTokenInvalid
	}

	return auth.Claims{UserID: claims.Subject, Username: claims.Username}, nil
}
