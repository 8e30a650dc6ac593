package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/lumiere-jewelry/storefront/internal/store"
)

type CreateInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required,min=10"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied"`
}

// InquiryHandler serves the contact form and the admin inquiry list.
type InquiryHandler struct {
	store    *store.Store
	validate *validator.Validate
}

func NewInquiryHandler(s *store.Store) *InquiryHandler {
	return &InquiryHandler{store: s, validate: validator.New()}
}

func (h *InquiryHandler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/inquiries", h.handleCreateInquiry)
}

func (h *InquiryHandler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/inquiries", h.handleListInquiries)
	router.Put("/inquiries/{id}/status", h.handleUpdateInquiryStatus)
}

func (h *InquiryHandler) handleCreateInquiry(w http.ResponseWriter, r *http.Request) {
	var requestPayload CreateInquiryRequest
	if !decodeStrict(w, r, h.validate, &requestPayload) {
		return
	}

	inquiry := h.store.AddInquiry(
		requestPayload.Name,
		requestPayload.Email,
		requestPayload.Phone,
		requestPayload.Message,
	)

	respondWithJSON(w, http.StatusCreated, inquiry)
}

func (h *InquiryHandler) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.Inquiries())
}

func (h *InquiryHandler) handleUpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var requestPayload UpdateInquiryStatusRequest
	if !decodeStrict(w, r, h.validate, &requestPayload) {
		return
	}

	err := h.store.UpdateInquiryStatus(id, store.InquiryStatus(requestPayload.Status))
	if err != nil {
		var clientMessage string
		if errors.Is(err, store.ErrNotFound) {
			clientMessage = "Inquiry not found"
		} else {
			clientMessage = "Failed to update inquiry status"
			log.Error().Err(err).Str("inquiry_id", id).Msg("Failed to update inquiry status")
		}
		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
