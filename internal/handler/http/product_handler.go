package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/lumiere-jewelry/storefront/internal/store"
)

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required,oneof=chain ring bracelet other"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Featured    bool    `json:"featured"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,oneof=chain ring bracelet other"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}

// ProductHandler serves the catalog: public browsing with category filter
// and sorting, admin inventory management.
type ProductHandler struct {
	store    *store.Store
	validate *validator.Validate
}

func NewProductHandler(s *store.Store) *ProductHandler {
	return &ProductHandler{store: s, validate: validator.New()}
}

func (h *ProductHandler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/products", h.handleListProducts)
	router.Get("/products/{id}", h.handleGetProduct)
}

func (h *ProductHandler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/products", h.handleCreateProduct)
	router.Put("/products/{id}", h.handleUpdateProduct)
	router.Delete("/products/{id}", h.handleDeleteProduct)
}

func (h *ProductHandler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.store.Products()

	if category := r.URL.Query().Get("category"); category != "" && category != "all" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category.String() == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if r.URL.Query().Get("featured") == "true" {
		filtered := products[:0]
		for _, p := range products {
			if p.Featured {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sortProducts(products, r.URL.Query().Get("sort"))

	respondWithJSON(w, http.StatusOK, products)
}

// sortProducts orders the slice the way the shop page does: price both
// ways, name, or featured-first by default.
func sortProducts(products []store.Product, by string) {
	switch by {
	case "price-low":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-high":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	default:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Featured && !products[j].Featured })
	}
}

func (h *ProductHandler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, found := h.store.Product(id)
	if !found {
		respondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	respondWithJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var requestPayload CreateProductRequest
	if !decodeStrict(w, r, h.validate, &requestPayload) {
		return
	}

	created := h.store.AddProduct(store.Product{
		Name:        requestPayload.Name,
		Description: requestPayload.Description,
		Price:       requestPayload.Price,
		Category:    store.Category(requestPayload.Category),
		ImageURL:    requestPayload.ImageURL,
		Stock:       requestPayload.Stock,
		Featured:    requestPayload.Featured,
	})

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var requestPayload UpdateProductRequest
	if !decodeStrict(w, r, h.validate, &requestPayload) {
		return
	}

	patch := store.ProductPatch{
		Name:        requestPayload.Name,
		Description: requestPayload.Description,
		Price:       requestPayload.Price,
		ImageURL:    requestPayload.ImageURL,
		Stock:       requestPayload.Stock,
		Featured:    requestPayload.Featured,
	}
	if requestPayload.Category != nil {
		category := store.Category(*requestPayload.Category)
		patch.Category = &category
	}

	updated, found := h.store.UpdateProduct(id, patch)
	if !found {
		respondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *ProductHandler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.store.DeleteProduct(id) {
		respondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
