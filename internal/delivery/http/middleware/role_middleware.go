package middleware

import (
	"net/http"

	"hospital-records-api/internal/authz"
	"hospital-records-api/pkg/response"
)

// Require creates a middleware that gates a route on an authorization
// engine predicate. The actor must already be in the context (set by
// AuthMiddleware).
func Require(predicate func(authz.Actor) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := GetActorFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication credentials were not provided.")
				return
			}

			if !predicate(actor) {
				response.Forbidden(w, "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireClinician gates the patient collection endpoints: doctors and
// admins pass.
func RequireClinician(next http.Handler) http.Handler {
	return Require(authz.IsClinician)(next)
}
