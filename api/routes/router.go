package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marwandev/formalflow-backend/api/controllers"
	"github.com/marwandev/formalflow-backend/api/middleware"
	"github.com/marwandev/formalflow-backend/internal/auth"
	"github.com/marwandev/formalflow-backend/internal/budget"
	cartsvc "github.com/marwandev/formalflow-backend/internal/cart"
	"github.com/marwandev/formalflow-backend/internal/catalog"
	checkoutsvc "github.com/marwandev/formalflow-backend/internal/checkout"
	"github.com/marwandev/formalflow-backend/internal/expenses"
	"github.com/marwandev/formalflow-backend/internal/likes"
	"github.com/marwandev/formalflow-backend/internal/orders"
	"github.com/marwandev/formalflow-backend/internal/users"
	"github.com/marwandev/formalflow-backend/pkg/auth/session"
	"github.com/marwandev/formalflow-backend/pkg/config"
	"github.com/marwandev/formalflow-backend/pkg/logger"
	"github.com/marwandev/formalflow-backend/pkg/metrics"
	"github.com/marwandev/formalflow-backend/pkg/redis"
)

// Pinger is the readiness probe surface of a backing store.
type Pinger interface {
	Ping(context.Context) error
}

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
}

// CacheStore is the slice of the redis client the router hands to probes,
// rate limiting, and idempotency replay.
type CacheStore interface {
	Pinger
	redis.IdempotencyStore
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
}

// Deps bundles everything the router needs wired in.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             Pinger
	Redis          CacheStore
	SessionManager session.AccessSessionChecker
	AuthService    auth.Service
	CatalogService *catalog.Service
	CartService    *cartsvc.Service
	CheckoutSvc    *checkoutsvc.Service
	OrdersService  *orders.Service
	UsersRepo      *users.Repository
	LikesService   *likes.Service
	ExpensesSvc    *expenses.Service
	BudgetService  *budget.Service
	HTTPMetrics    *metrics.HTTPMetrics
	PromRegistry   *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	// keep interface params nil when the concrete client is absent, so the
	// nil checks downstream behave
	var cache Pinger
	var idemStore redis.IdempotencyStore
	var rateStore rateLimiterStore
	if deps.Redis != nil {
		cache = deps.Redis
		idemStore = deps.Redis
		rateStore = deps.Redis
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, cache, logg))
	})

	if deps.PromRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.PromRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, rateStore, logg)).
			Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.With(
			middleware.AuthRateLimit(registerPolicy, rateStore, logg),
			middleware.Idempotency(cfg.Checkout, idemStore, logg),
		).Post("/register", controllers.AuthRegister(deps.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, deps.SessionManager, logg)).
			Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductList(deps.CatalogService, logg))
		r.Get("/facets", controllers.ProductFacets(deps.CatalogService, logg))
		r.Get("/{productId}", controllers.ProductGet(deps.CatalogService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Use(middleware.Idempotency(cfg.Checkout, idemStore, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(deps.CartService, logg))
			r.Delete("/", controllers.CartClear(deps.CartService, logg))
			r.Post("/items", controllers.CartAddItem(deps.CartService, logg))
			r.Patch("/items", controllers.CartUpdateQuantity(deps.CartService, logg))
			r.Delete("/items", controllers.CartRemoveItem(deps.CartService, logg))
			r.Post("/buy-now", controllers.CartBuyNow(deps.CartService, logg))
		})

		r.Get("/checkout/delivery-dates", controllers.CheckoutDates(deps.CheckoutSvc, logg))
		r.Post("/checkout", controllers.CheckoutSubmit(deps.CheckoutSvc, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(deps.OrdersService, logg))
			r.Delete("/{orderId}", controllers.OrderCancel(deps.OrdersService, logg))
		})

		r.Route("/likes", func(r chi.Router) {
			r.Get("/", controllers.LikesList(deps.LikesService, logg))
			r.Put("/{productId}", controllers.LikeProduct(deps.LikesService, logg))
			r.Delete("/{productId}", controllers.UnlikeProduct(deps.LikesService, logg))
		})

		r.Get("/profile", controllers.ProfileGet(deps.UsersRepo, logg))
		r.Put("/profile", controllers.ProfileUpdate(deps.UsersRepo, logg))

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", controllers.ExpensesList(deps.ExpensesSvc, logg))
			r.Post("/", controllers.ExpenseCreate(deps.ExpensesSvc, logg))
			r.Get("/summary", controllers.ExpensesSummary(deps.ExpensesSvc, logg))
			r.Delete("/{expenseId}", controllers.ExpenseDelete(deps.ExpensesSvc, logg))
		})

		r.Get("/budget", controllers.BudgetOverview(deps.BudgetService, logg))
	})

	return r
}
