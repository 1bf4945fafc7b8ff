package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Catalog  Catalog
	Checkout Checkout
	Auth     Auth
	Admin    Admin
	Visitors VisitorResolver
	Tokens   *VisitorTokens
	Cookie   CookieConfig
	// Metrics is optional; without it /metrics is not served.
	Metrics *metrics.MetricsManager
	// Health is optional and backs /healthz.
	Health         func(ctx context.Context) error
	RequestTimeout time.Duration
	MaxUploadBytes int64
	Log            logger.Logger
}

func NewRouter(d RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(d.Log))
	if d.Metrics != nil {
		r.Use(requestMetrics(d.Metrics))
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if d.Health != nil {
			if err := d.Health(r.Context()); err != nil {
				d.Log.Warnf("Health check failed: %v", err)
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	catalog := NewCatalogHandler(d.Catalog, d.Log)
	cart := NewCartHandler(d.Log)
	checkout := NewCheckoutHandler(d.Checkout, d.Metrics, d.Log)
	auth := NewAuthHandler(d.Auth, d.Metrics, d.Log)
	admin := NewAdminHandler(d.Admin, d.MaxUploadBytes, d.Log)

	r.Route("/api", func(api chi.Router) {
		if d.RequestTimeout > 0 {
			api.Use(middleware.Timeout(d.RequestTimeout))
		}

		api.Get("/products", catalog.ListProducts)
		api.Get("/products/featured", catalog.Featured)
		api.Get("/products/search", catalog.Search)
		api.Get("/products/{id}", catalog.GetProduct)
		api.Get("/categories", catalog.Categories)
		api.Post("/auth/register", auth.Register)
		api.Post("/auth/password-strength", auth.PasswordStrength)

		api.Group(func(v chi.Router) {
			v.Use(VisitorMiddleware(d.Tokens, d.Visitors, d.Cookie, d.Log))

			v.Get("/cart", cart.Get)
			v.Delete("/cart", cart.Clear)
			v.Post("/cart/items", cart.AddItem)
			v.Patch("/cart/items/{index}", cart.ChangeQuantity)
			v.Delete("/cart/items/{index}", cart.RemoveItem)

			v.Post("/checkout", checkout.PlaceOrder)

			v.Post("/auth/login", auth.Login)
			v.Post("/auth/logout", auth.Logout)
			v.Get("/auth/session", auth.Session)

			v.Route("/admin", func(a chi.Router) {
				a.Get("/dashboard", admin.Dashboard)
				a.Get("/orders/recent", admin.RecentOrders)
				a.Get("/orders/{id}", admin.GetOrder)
				a.Get("/products", admin.ListProducts)
				a.Post("/products", admin.CreateProduct)
				a.Post("/products/images", admin.UploadImage)
				a.Put("/products/{id}", admin.UpdateProduct)
				a.Delete("/products/{id}", admin.DeleteProduct)
			})
		})
	})

	return r
}
