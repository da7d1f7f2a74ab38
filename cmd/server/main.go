package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"networth-tracker/internal/config"
	"networth-tracker/internal/database"
	"networth-tracker/internal/handlers"
	"networth-tracker/internal/middleware"
	"networth-tracker/internal/repositories"
	"networth-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	e := buildServer(cfg, db)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

// buildServer wires repositories, services and handlers onto an Echo instance
func buildServer(cfg *config.Config, db *database.DB) *echo.Echo {
	metrics := services.NewPrometheusMetrics()

	userRepo := repositories.NewUserRepository(db.DB)
	assetRepo := repositories.NewAssetRepository(db.DB)
	inputRepo := repositories.NewAssetInputRepository(db.DB)
	incomingRepo := repositories.NewIncomingRepository(db.DB)
	expenseRepo := repositories.NewExpenseRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	targetRepo := repositories.NewAllocationTargetRepository(db.DB)
	subcategoryRepo := repositories.NewSubcategoryRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)

	tokenService := services.NewTokenService(&cfg.Auth)
	userService := services.NewUserService(userRepo)
	assetService := services.NewAssetService(assetRepo)
	inputService := services.NewAssetInputService(inputRepo, assetRepo)
	allocationService := services.NewAllocationService(inputRepo, targetRepo)
	budgetService := services.NewBudgetService(budgetRepo, expenseRepo, categoryRepo)
	cashflowService := services.NewCashflowService(incomingRepo, expenseRepo, subcategoryRepo)
	subcategoryService := services.NewSubcategoryService(subcategoryRepo)
	netWorthService := services.NewNetWorthService(inputRepo)
	exportService := services.NewExportService(
		userRepo, assetRepo, inputRepo, incomingRepo,
		expenseRepo, budgetRepo, targetRepo, subcategoryRepo,
	)
	healthService := services.NewHealthService(db)

	assetHandler := handlers.NewAssetHandler(assetService, inputService, metrics)
	allocationHandler := handlers.NewAllocationHandler(allocationService, metrics)
	budgetHandler := handlers.NewBudgetHandler(budgetService, metrics)
	cashflowHandler := handlers.NewCashflowHandler(cashflowService, metrics)
	subcategoryHandler := handlers.NewSubcategoryHandler(subcategoryService, metrics)
	netWorthHandler := handlers.NewNetWorthHandler(netWorthService)
	userHandler := handlers.NewUserHandler(userService, exportService)
	healthHandler := handlers.NewHealthHandler(healthService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler(metrics)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestMetrics(metrics))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.RequestIDHeader},
	}))
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api", middleware.RequireAuth(tokenService, userService))

	api.GET("/users/me", userHandler.GetProfile)
	api.PATCH("/users/me", userHandler.UpdateProfile)
	api.GET("/export/data", userHandler.ExportData)

	api.GET("/assets", assetHandler.ListAssets)
	api.POST("/assets", assetHandler.CreateAsset)
	api.PATCH("/assets/:id", assetHandler.UpdateAsset)
	api.DELETE("/assets/:id", assetHandler.DeleteAsset)

	api.GET("/asset-inputs", assetHandler.ListInputs)
	api.POST("/asset-inputs", assetHandler.SaveInput)
	api.DELETE("/asset-inputs/:id", assetHandler.DeleteInput)

	api.GET("/allocation", allocationHandler.GetAllocation)
	api.GET("/category-allocation-targets", allocationHandler.ListTargets)
	api.PATCH("/category-allocation-targets/:category", allocationHandler.SaveTarget)

	api.GET("/budgets", budgetHandler.ListBudgets)
	api.PATCH("/budgets/:category", budgetHandler.SaveBudget)
	api.POST("/budgets/auto-adjust", budgetHandler.AutoAdjust)

	api.GET("/incomings", cashflowHandler.ListIncomings)
	api.POST("/incomings", cashflowHandler.CreateIncoming)
	api.DELETE("/incomings/:id", cashflowHandler.DeleteIncoming)

	api.GET("/expenses", cashflowHandler.ListExpenses)
	api.POST("/expenses", cashflowHandler.CreateExpense)
	api.PATCH("/expenses/:id", cashflowHandler.UpdateExpense)
	api.DELETE("/expenses/:id", cashflowHandler.DeleteExpense)

	api.GET("/subcategories", subcategoryHandler.ListSubcategories)
	api.POST("/subcategories", subcategoryHandler.CreateSubcategory)
	api.PATCH("/subcategories/:id", subcategoryHandler.UpdateSubcategory)
	api.DELETE("/subcategories/:id", subcategoryHandler.DeleteSubcategory)

	api.GET("/networth/history", netWorthHandler.GetHistory)
	api.GET("/networth/projection", netWorthHandler.GetProjection)

	return e
}
