package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/lumiere-jewelry/storefront/internal/store"
)

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" validate:"required,min=2"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	ShippingAddress string `json:"shipping_address" validate:"required,min=5"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered"`
}

// OrderHandler serves checkout for customers and the order book for the
// admin panel.
type OrderHandler struct {
	store    *store.Store
	validate *validator.Validate
}

func NewOrderHandler(s *store.Store) *OrderHandler {
	return &OrderHandler{store: s, validate: validator.New()}
}

func (h *OrderHandler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/checkout", h.handleCheckout)
}

func (h *OrderHandler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/orders", h.handleListOrders)
	router.Get("/orders/{id}", h.handleGetOrder)
	router.Put("/orders/{id}/status", h.handleUpdateOrderStatus)
}

func (h *OrderHandler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var requestPayload CheckoutRequest
	if !decodeStrict(w, r, h.validate, &requestPayload) {
		return
	}

	order, err := h.store.CreateOrder(store.CustomerInfo{
		Name:            requestPayload.CustomerName,
		Email:           requestPayload.CustomerEmail,
		ShippingAddress: requestPayload.ShippingAddress,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmptyCart) {
			respondWithError(w, http.StatusConflict, "Cart is empty")
			return
		}
		log.Error().Err(err).Msg("Failed to create order")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to create order")
		return
	}

	respondWithJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.Orders())
}

func (h *OrderHandler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, found := h.store.Order(chi.URLParam(r, "id"))
	if !found {
		respondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	respondWithJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var requestPayload UpdateOrderStatusRequest
	if !decodeStrict(w, r, h.validate, &requestPayload) {
		return
	}

	err := h.store.UpdateOrderStatus(id, store.OrderStatus(requestPayload.Status))
	if err != nil {
		var clientMessage string
		if errors.Is(err, store.ErrNotFound) {
			clientMessage = "Order not found"
		} else {
			clientMessage = "Failed to update order status"
			log.Error().Err(err).Str("order_id", id).Msg("Failed to update order status")
		}
		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
