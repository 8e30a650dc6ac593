package http

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lumiere-jewelry/storefront/internal/store"
)

// Session reports whether an admin session is active. Satisfied by
// *store.Store.
type Session interface {
	IsAdmin() bool
}

// RequireAdmin rejects requests when no admin session is active.
func RequireAdmin(session Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAdmin() {
				log.Warn().Str("path", r.URL.Path).Msg("Admin endpoint hit without session")
				respondWithError(w, mapErrorToStatusCode(store.ErrUnauthorized), "Admin session required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
