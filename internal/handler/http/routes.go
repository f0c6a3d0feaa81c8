package http

import (
	"github.com/go-chi/chi/v5"
)

// ShippingPrefix is the path under which every route is mounted a second
// time.
const ShippingPrefix = "/api/shipping"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover)

	h.shippingRoutes(router)
	router.Route(ShippingPrefix, h.shippingRoutes)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) shippingRoutes(r chi.Router) {
	r.Post("/calculate", h.calculate)
	r.Post("/calculate-simple", h.calculateSimple)
	r.Post("/calculate-shopify", h.calculateShopify)
	r.Post("/calculate-package", h.calculatePackage)
	r.Post("/validate-postal-code", h.validatePostalCode)
	r.Get("/health", h.health)
}
