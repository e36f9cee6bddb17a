package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/marwandev/formalflow-backend/api/routes"
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
	"github.com/marwandev/formalflow-backend/pkg/db"
	"github.com/marwandev/formalflow-backend/pkg/logger"
	"github.com/marwandev/formalflow-backend/pkg/metrics"
	"github.com/marwandev/formalflow-backend/pkg/migrate"
	"github.com/marwandev/formalflow-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	usersRepo := users.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       usersRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	productCatalog, err := catalog.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load product catalog", err)
		os.Exit(1)
	}
	catalogService := catalog.NewService(productCatalog, logg)

	cartStore := cartsvc.NewStore(redisClient, redisClient, cfg.Cart.TTL)
	cartService := cartsvc.NewService(cartStore, productCatalog, logg)

	ordersRepo := orders.NewRepository(dbClient.DB())
	ordersService := orders.NewService(ordersRepo, logg)
	checkoutService := checkoutsvc.NewService(cartService, ordersRepo, logg)

	likesRepo := likes.NewRepository(dbClient.DB())
	likesService := likes.NewService(likesRepo, productCatalog, logg)

	expensesRepo := expenses.NewRepository(dbClient.DB())
	expensesService := expenses.NewService(expensesRepo, logg)
	budgetService := budget.NewService(usersRepo, expensesRepo)

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			SessionManager: sessionManager,
			AuthService:    authService,
			CatalogService: catalogService,
			CartService:    cartService,
			CheckoutSvc:    checkoutService,
			OrdersService:  ordersService,
			UsersRepo:      usersRepo,
			LikesService:   likesService,
			ExpensesSvc:    expensesService,
			BudgetService:  budgetService,
			HTTPMetrics:    httpMetrics,
			PromRegistry:   registry,
		}),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
