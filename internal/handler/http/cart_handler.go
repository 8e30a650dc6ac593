package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/lumiere-jewelry/storefront/internal/store"
)

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items   []store.CartItem  `json:"items"`
	Summary store.CartSummary `json:"summary"`
}

// CartHandler serves the shopping cart. The out-of-stock refusal and the
// stock cap on quantities live here; the store itself accepts any
// quantity.
type CartHandler struct {
	store    *store.Store
	validate *validator.Validate
}

func NewCartHandler(s *store.Store) *CartHandler {
	return &CartHandler{store: s, validate: validator.New()}
}

func (h *CartHandler) RegisterRoutes(router chi.Router) {
	router.Get("/cart", h.handleGetCart)
	router.Post("/cart/items", h.handleAddItem)
	router.Put("/cart/items/{productID}", h.handleUpdateItem)
	router.Delete("/cart/items/{productID}", h.handleRemoveItem)
	router.Delete("/cart", h.handleClearCart)
}

func (h *CartHandler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, CartResponse{
		Items:   h.store.Cart(),
		Summary: h.store.Summary(),
	})
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var requestPayload AddCartItemRequest
	if !decodeStrict(w, r, h.validate, &requestPayload) {
		return
	}

	product, found := h.store.Product(requestPayload.ProductID)
	if !found {
		respondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if product.Stock <= 0 {
		respondWithError(w, http.StatusConflict, "This item is currently out of stock")
		return
	}

	if err := h.store.AddToCart(requestPayload.ProductID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Error().Err(err).Msg("Failed to add product to cart")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to add product to cart")
		return
	}

	respondWithJSON(w, http.StatusOK, CartResponse{
		Items:   h.store.Cart(),
		Summary: h.store.Summary(),
	})
}

func (h *CartHandler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var requestPayload UpdateCartItemRequest
	if !decodeStrict(w, r, h.validate, &requestPayload) {
		return
	}

	quantity := requestPayload.Quantity
	if product, found := h.store.Product(productID); found && quantity > product.Stock {
		quantity = product.Stock
	}

	h.store.UpdateCartQuantity(productID, quantity)

	respondWithJSON(w, http.StatusOK, CartResponse{
		Items:   h.store.Cart(),
		Summary: h.store.Summary(),
	})
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveFromCart(chi.URLParam(r, "productID"))

	respondWithJSON(w, http.StatusOK, CartResponse{
		Items:   h.store.Cart(),
		Summary: h.store.Summary(),
	})
}

func (h *CartHandler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	h.store.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}
