package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	handler "github.com/lumiere-jewelry/storefront/internal/handler/http"
	"github.com/lumiere-jewelry/storefront/internal/store"
)

// NewRouter wires every handler onto /api, with admin routes behind the
// session gate.
func NewRouter(s *store.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	productHandler := handler.NewProductHandler(s)
	cartHandler := handler.NewCartHandler(s)
	orderHandler := handler.NewOrderHandler(s)
	inquiryHandler := handler.NewInquiryHandler(s)
	authHandler := handler.NewAuthHandler(s)

	r.Route("/api", func(api chi.Router) {
		productHandler.RegisterPublicRoutes(api)
		cartHandler.RegisterRoutes(api)
		orderHandler.RegisterPublicRoutes(api)
		inquiryHandler.RegisterPublicRoutes(api)
		authHandler.RegisterRoutes(api)

		api.Group(func(admin chi.Router) {
			admin.Use(handler.RequireAdmin(s))
			productHandler.RegisterAdminRoutes(admin)
			orderHandler.RegisterAdminRoutes(admin)
			inquiryHandler.RegisterAdminRoutes(admin)
		})
	})

	return r
}
