package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/lumiere-jewelry/storefront/internal/store"
)

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	IsAdmin bool `json:"is_admin"`
}

// AuthHandler serves the admin session: one shared secret, one global
// flag.
type AuthHandler struct {
	store    *store.Store
	validate *validator.Validate
}

func NewAuthHandler(s *store.Store) *AuthHandler {
	return &AuthHandler{store: s, validate: validator.New()}
}

func (h *AuthHandler) RegisterRoutes(router chi.Router) {
	router.Post("/auth/login", h.handleLogin)
	router.Post("/auth/logout", h.handleLogout)
	router.Get("/auth/session", h.handleSession)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var requestPayload LoginRequest
	if !decodeStrict(w, r, h.validate, &requestPayload) {
		return
	}

	if !h.store.Login(requestPayload.Password) {
		respondWithError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	respondWithJSON(w, http.StatusOK, SessionResponse{IsAdmin: true})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, SessionResponse{IsAdmin: h.store.IsAdmin()})
}
