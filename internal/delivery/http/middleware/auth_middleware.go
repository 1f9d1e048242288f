package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-records-api/internal/authz"
	"hospital-records-api/pkg/response"
)

type contextKey string

const ActorKey contextKey = "actor"

// TokenResolver maps an opaque bearer token key to the acting identity.
// Returns (nil, nil) when the key is unknown.
type TokenResolver interface {
	ResolveToken(ctx context.Context, key string) (*authz.Actor, error)
}

type AuthMiddleware struct {
	resolver TokenResolver
}

func NewAuthMiddleware(resolver TokenResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate resolves the bearer token before anything else runs: an
// unauthenticated request is rejected without its body ever being read.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authentication credentials were not provided.")
			return
		}

		// Both "Bearer <key>" and "Token <key>" name the same key.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") {
			response.Unauthorized(w, "Invalid authorization header format.")
			return
		}

		actor, err := m.resolver.ResolveToken(r.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			response.IntegrityError(w)
			return
		}
		if actor == nil {
			response.Unauthorized(w, "Invalid token.")
			return
		}

		ctx := context.WithValue(r.Context(), ActorKey, *actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActorFromContext extracts the acting identity from the context.
func GetActorFromContext(ctx context.Context) (authz.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(authz.Actor)
	return actor, ok
}
