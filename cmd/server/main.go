package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	appmiddleware "fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/scheduler"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env if present; environment variables win over file values
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	ledgerService := services.NewLedgerService(transactionRepo, metrics, nil)
	summaryService := services.NewSummaryService(transactionRepo, metrics)
	reportService := services.NewReportService(transactionRepo, reportRepo, metrics, nil)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountRepo)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo)
	reportHandler := handlers.NewReportHandler(summaryService, reportService, reportRepo)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.RateLimiterWithConfig(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	registerRoutes(e, accountHandler, transactionHandler, budgetHandler, reportHandler, healthHandler)

	// Scheduler for the monthly report job
	var reportScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		reportScheduler = scheduler.New(reportService)
		if err := reportScheduler.Start(cfg.Scheduler.CronSpec); err != nil {
			slog.Error("failed to start report scheduler", "error", err)
			os.Exit(1)
		}
	}

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	if reportScheduler != nil {
		reportScheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func registerRoutes(
	e *echo.Echo,
	accountHandler *handlers.AccountHandler,
	transactionHandler *handlers.TransactionHandler,
	budgetHandler *handlers.BudgetHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthCheckHandler,
) {
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	accounts := api.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.ListAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)
	accounts.POST("/:id/balance", accountHandler.AdjustBalance)

	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	reports := api.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/monthly", reportHandler.ListReports)
	reports.GET("/monthly/:id", reportHandler.GetReport)
	reports.POST("/monthly/run", reportHandler.RunMonthlyReport)
}
