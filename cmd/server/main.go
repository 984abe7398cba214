package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"emurai-be-svc/docs"
	"emurai-be-svc/internal/config"
	"emurai-be-svc/internal/database"
	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/handler"
	"emurai-be-svc/internal/middleware"
	"emurai-be-svc/internal/models"
	"emurai-be-svc/internal/repository"
	"emurai-be-svc/internal/scheduler"
	"emurai-be-svc/internal/service"
	"emurai-be-svc/internal/store"
	"emurai-be-svc/pkg/logger"
)

// @title EMURAI Backend Service API
// @version 1.0
// @description RESTful API for the EMURAI neighborhood administration dashboard
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "EMURAI Backend Service API"
	docs.SwaggerInfo.Description = "RESTful API for the EMURAI neighborhood administration dashboard"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting EMURAI Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize preference store
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to open preference store")
	}
	appLogger.Info("Preference store opened successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}

	// Initialize repositories
	prefsRepo := repository.NewPreferenceRepository(db.DB)

	// Restore the persisted theme, defaulting to dark
	theme, err := prefsRepo.Get(models.PreferenceKeyTheme)
	if err != nil {
		appLogger.WithField("error", err).Warn("Failed to read theme preference, using default")
	}
	if !models.ValidTheme(theme) {
		theme = models.ThemeDark
	}

	// Initialize the in-memory aggregate and view session
	dataStore := store.NewStore()
	session := store.NewSession(theme)

	// Initialize the sheet gateway
	sheetGateway := gateway.NewSheetGateway(
		cfg.Sheet.ScriptURL,
		time.Duration(cfg.Sheet.TimeoutSeconds)*time.Second,
		appLogger,
	)
	if sheetGateway.Configured() {
		appLogger.Info("Sheet gateway configured")
	} else {
		appLogger.Warn("Sheet gateway not configured, serving the sample dataset")
	}

	// Initialize services
	syncService := service.NewSyncService(sheetGateway, dataStore, appLogger)
	authService := service.NewAuthService(&cfg.Admin, &cfg.JWT, appLogger)
	dashboardService := service.NewDashboardService(dataStore, appLogger)
	kasService := service.NewKasService(dataStore, sheetGateway, syncService, appLogger)
	iuranService := service.NewIuranService(dataStore, sheetGateway, syncService, appLogger)
	rondaService := service.NewRondaService(dataStore, sheetGateway, syncService, appLogger)
	infoService := service.NewInfoService(dataStore, sheetGateway, syncService, appLogger)
	sessionService := service.NewSessionService(session, prefsRepo, appLogger)

	// Initial dataset load
	loadCtx, loadCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Sheet.TimeoutSeconds+5)*time.Second)
	result, err := syncService.LoadAll(loadCtx)
	loadCancel()
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to load initial dataset")
	}
	appLogger.WithField("source", result.Source).Info("Initial dataset loaded")
	if dataStore.Empty() {
		appLogger.Warn("Dataset is empty after initial load")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(requestid.New())
	router.Use(middleware.CORS(&cfg.CORS))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())
	router.HandleMethodNotAllowed = true

	if cfg.Server.EnablePprof {
		pprof.Register(router)
	}

	// Setup routes
	handler.SetupRoutes(router, handler.Services{
		Auth:      authService,
		Dashboard: dashboardService,
		Kas:       kasService,
		Iuran:     iuranService,
		Ronda:     rondaService,
		Info:      infoService,
		Session:   sessionService,
		Sync:      syncService,
	}, sheetGateway, &cfg.JWT, appLogger)

	// Start the refresh scheduler
	var refreshScheduler *scheduler.RefreshScheduler
	if cfg.Scheduler.Enabled {
		refreshScheduler = scheduler.NewRefreshScheduler(syncService, sheetGateway, appLogger, cfg.Scheduler.RefreshCronExpression)
		if err := refreshScheduler.Start(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to start refresh scheduler")
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop the scheduler first so no refresh runs during shutdown
	if refreshScheduler != nil {
		refreshScheduler.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
