package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey   ctxKey = "claims"
	enforcedKey ctxKey = "auth_enforced"
)

var (
	ErrUnauthorized = apperr.Unauthorized("unauthorized")
	ErrForbidden    = apperr.Forbidden("forbidden")
)

// AuthContext:
//   - Si verifier == nil => modo dev: no hay sesión y los handlers confían en el user_id del body.
//   - Si verifier != nil => la auth queda exigida; si viene Bearer válido se setean claims.
//   - Un token inválido no corta el request; Authorize decide 401/403.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), enforcedKey, true)

			token := bearerToken(r.Header.Get("Authorization"))
			if token != "" {
				if claims, err := verifier.Verify(ctx, token); err == nil {
					ctx = context.WithValue(ctx, claimsKey, claims)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// Authenticated exige una sesión válida cuando la auth está activa.
func Authenticated(ctx context.Context) error {
	if enforced, _ := ctx.Value(enforcedKey).(bool); !enforced {
		return nil
	}
	claims, ok := GetClaims(ctx)
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return ErrUnauthorized
	}
	return nil
}

// Authorize exige que la sesión pertenezca a userID cuando la auth está activa.
func Authorize(ctx context.Context, userID int64) error {
	if err := Authenticated(ctx); err != nil {
		return err
	}
	claims, ok := GetClaims(ctx)
	if ok && claims.UserID != strconv.FormatInt(userID, 10) {
		return ErrForbidden
	}
	return nil
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
