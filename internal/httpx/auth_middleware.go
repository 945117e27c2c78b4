package httpx

import (
	"context"
	"net/http"
	"strings"
)

// TokenResolver maps a plaintext bearer token to the user it was issued to.
type TokenResolver interface {
	ResolveUserID(ctx context.Context, plaintext string) (string, error)
}

// AuthMiddleware rejects requests without a valid bearer token and puts the
// resolved user ID on the request context.
func AuthMiddleware(tokens TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONFail(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}
			plaintext := strings.TrimPrefix(authHeader, "Bearer ")

			userID, err := tokens.ResolveUserID(r.Context(), plaintext)
			if err != nil {
				JSONFail(w, http.StatusUnauthorized, "Unauthenticated.")
				return
			}

			ctx := ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
