package httphandler

import (
	"context"
	"net/http"
	"strings"

	"github.com/zarshop/storefront/internal/core/domain"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

type authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Session, error)
}

type sessionCtxKey struct{}

// SessionFromContext returns the session placed by [RequireAuth] or
// [OptionalAuth].
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(domain.Session)
	return s, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireAuth rejects requests without a valid session token.
func RequireAuth(auth authenticator, next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		session, err := auth.Authenticate(r.Context(), token)
		if err != nil {
			http.Error(w, "invalid session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hf)
}

// OptionalAuth resolves the session when a token is present and passes
// the request through either way.
func OptionalAuth(auth authenticator, next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token != "" {
			session, err := auth.Authenticate(r.Context(), token)
			if err == nil {
				ctx := context.WithValue(
					r.Context(), sessionCtxKey{}, session,
				)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}
