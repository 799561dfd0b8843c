package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receipt-insights/internal/config"
	"receipt-insights/internal/database"
	"receipt-insights/internal/handlers"
	"receipt-insights/internal/middleware"
	"receipt-insights/internal/repositories"
	"receipt-insights/internal/services"
	"receipt-insights/internal/store"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg)

	metrics := services.NewPrometheusMetrics()

	var (
		source      store.ReceiptSource
		receiptRepo repositories.ReceiptRepositoryInterface
		db          *gorm.DB
	)

	if cfg.Store.IsRemote() {
		breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
		source = store.NewClient(store.ClientConfig{
			BaseURL:    cfg.Store.BaseURL,
			Timeout:    cfg.Store.Timeout,
			MaxRetries: cfg.Store.MaxRetries,
		}, breaker)
		slog.Info("using remote receipt store", "base_url", cfg.Store.BaseURL)
	} else {
		var err error
		db, err = database.Initialize(cfg)
		if err != nil {
			slog.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		receiptRepo = repositories.NewReceiptRepository(db)
		source = receiptRepo
		slog.Info("using local receipt store", "driver", cfg.Database.Driver)
	}

	snapshot := services.NewSnapshotService(source, metrics, cfg.Store.PageSize)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := snapshot.Refresh(ctx); err != nil {
		// The refresh loop retries; the API reports AnalyticsNotReady until
		// the first snapshot lands.
		slog.Warn("initial snapshot refresh failed", "error", err)
	}
	go refreshLoop(ctx, snapshot, cfg.Analytics.RefreshInterval)

	locale := language.Make(cfg.Analytics.Locale)
	queryService := services.NewReceiptQueryService(snapshot, locale)
	analyticsService := services.NewAnalyticsService(snapshot, metrics)
	mutationService := services.NewReceiptMutationService(source, snapshot)

	e := buildServer(cfg, db, receiptRepo, snapshot, queryService, analyticsService, mutationService, metrics)

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

// refreshLoop keeps the snapshot current. Each tick issues a fresh load;
// the snapshot service discards responses superseded by a newer refresh.
func refreshLoop(ctx context.Context, snapshot services.SnapshotServiceInterface, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := snapshot.Refresh(ctx); err != nil {
				slog.Warn("snapshot refresh failed", "error", err)
			}
		}
	}
}

func buildServer(
	cfg *config.Config,
	db *gorm.DB,
	receiptRepo repositories.ReceiptRepositoryInterface,
	snapshot services.SnapshotServiceInterface,
	queryService services.ReceiptQueryServiceInterface,
	analyticsService services.AnalyticsServiceInterface,
	mutationService services.ReceiptMutationServiceInterface,
	metrics services.MetricsRecorderInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions},
	}))

	healthHandler := handlers.NewHealthCheckHandler(db, snapshot)
	receiptHandler := handlers.NewReceiptHandler(queryService, mutationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, cfg.Analytics.DefaultMonths, cfg.Analytics.RecentLimit)
	docsHandler := handlers.NewDocsHandler()

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/docs", docsHandler.ServeScalarUI)
	e.GET("/docs/oas3.json", docsHandler.ServeOAS3JSON)

	if cfg.Security.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	api := e.Group("/api/v1")

	api.GET("/receipts", receiptHandler.ListReceipts)
	api.GET("/receipts/categories", receiptHandler.ListCategories)
	api.GET("/receipts/:id", receiptHandler.GetReceipt)
	api.PUT("/receipts/:id", receiptHandler.UpdateReceipt)
	api.DELETE("/receipts/:id", receiptHandler.DeleteReceipt)

	api.GET("/analytics/expenses", analyticsHandler.GetExpenseAnalytics)
	api.GET("/analytics/categories", analyticsHandler.GetCategoryStats)
	api.GET("/analytics/monthly-trends", analyticsHandler.GetMonthlyTrends)
	api.GET("/analytics/summary", analyticsHandler.GetSummary)
	api.GET("/analytics/dashboard", analyticsHandler.GetDashboard)

	// Seeding needs direct store access, so the dev endpoints only exist in
	// local mode.
	if cfg.IsDevelopment() && receiptRepo != nil {
		devHandler := handlers.NewDevHandler(receiptRepo, snapshot, metrics, slog.Default())
		api.POST("/dev/seed", devHandler.SeedReceipts)
		api.POST("/dev/reset", devHandler.ResetReceipts)
	}

	return e
}
