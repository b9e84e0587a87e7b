package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mmeshcher/hardstore-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware POS-системы.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		// Каталог доступен без авторизации: витрина только читает.
		r.Get("/products", h.ListProducts)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.Middleware)

			r.Post("/products", h.CreateProduct)
			r.Put("/products/{id}", h.UpdateProduct)
			r.Delete("/products/{id}", h.DeleteProduct)

			r.Get("/categories", h.ListCategories)
			r.Post("/categories", h.CreateCategory)

			r.Get("/cart", h.GetCart)
			r.Post("/cart/items", h.AddCartItem)
			r.Delete("/cart/items/{index}", h.RemoveCartItem)
			r.Post("/cart/clear", h.ClearCart)

			r.Post("/checkout", h.Checkout)

			r.Post("/cart/save", h.SaveCart)
			r.Get("/cart/saved", h.ListSavedCarts)
			r.Post("/cart/saved/{token}/restore", h.RestoreCart)
			r.Delete("/cart/saved/{token}", h.DeleteSavedCart)

			r.Post("/stock/adjust", h.AdjustStock)
			r.Get("/stock/movements", h.ListStockMovements)
			r.Get("/stock/alerts", h.ListStockAlerts)

			r.Get("/dashboard", h.GetDashboard)
			r.Get("/purchases", h.ListPurchases)

			r.Get("/customers", h.ListCustomers)
			r.Put("/customers/{id}", h.UpdateCustomer)
			r.Delete("/customers/{id}", h.DeleteCustomer)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
