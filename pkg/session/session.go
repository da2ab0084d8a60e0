package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds the session-token settings supplied at process start.
type Config struct {
	Secret string `env:"SESSION_JWT_SECRET"` // Secret is the HS256 signing key; empty disables session auth.
}

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithClaims attaches verified session claims to the context.
func WithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// ClaimsFromContext retrieves the verified session claims, if any.
func ClaimsFromContext(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(contextKey{}).(jwt.MapClaims)
	return claims, ok
}

// StringClaim returns the named claim as a string, or empty when the request
// is unauthenticated or the claim is absent or not a string.
func StringClaim(ctx context.Context, key string) string {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return ""
	}
	s, _ := claims[key].(string)
	return s
}

// Middleware verifies a Bearer session token and puts its claims into the
// request context. Requests without an Authorization header pass through
// unauthenticated; requests with an invalid token are rejected.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	keyfunc := func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return secret, nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, keyfunc)
			if err != nil || !token.Valid {
				http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
