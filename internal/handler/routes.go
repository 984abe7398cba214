package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"emurai-be-svc/internal/config"
	"emurai-be-svc/internal/gateway"
	"emurai-be-svc/internal/middleware"
	"emurai-be-svc/internal/service"
	"emurai-be-svc/pkg/logger"
)

// Services bundles everything the route table needs
type Services struct {
	Auth      service.AuthService
	Dashboard service.DashboardService
	Kas       service.KasService
	Iuran     service.IuranService
	Ronda     service.RondaService
	Info      service.InfoService
	Session   service.SessionService
	Sync      service.SyncService
}

// SetupRoutes sets up all API routes. Read endpoints carry OptionalAdmin
// so their payloads include edit affordances for admins; every mutating
// endpoint sits behind RequireAdmin.
func SetupRoutes(
	router *gin.Engine,
	services Services,
	gw gateway.SheetGateway,
	jwtCfg *config.JWTConfig,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(services.Auth, logger)
	dashboardHandler := NewDashboardHandler(services.Dashboard, logger)
	kasHandler := NewKasHandler(services.Kas, logger)
	iuranHandler := NewIuranHandler(services.Iuran, logger)
	rondaHandler := NewRondaHandler(services.Ronda, services.Session, logger)
	infoHandler := NewInfoHandler(services.Info, logger)
	sessionHandler := NewSessionHandler(services.Session, logger)
	dataHandler := NewDataHandler(services.Sync, gw, logger)

	requireAdmin := middleware.RequireAdmin(jwtCfg)
	optionalAdmin := middleware.OptionalAdmin(jwtCfg)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", dataHandler.Health)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// Dashboard routes
		v1.GET("/dashboard", optionalAdmin, dashboardHandler.GetSummary)

		// Kas routes
		kas := v1.Group("/kas")
		{
			kas.GET("", optionalAdmin, kasHandler.List)
			kas.GET("/:id", kasHandler.Get)
			kas.POST("", requireAdmin, kasHandler.Create)
			kas.PUT("/:id", requireAdmin, kasHandler.Update)
			kas.DELETE("/:id", requireAdmin, kasHandler.Delete)
		}

		// Iuran routes
		iuran := v1.Group("/iuran")
		{
			iuran.GET("", optionalAdmin, iuranHandler.List)
			iuran.GET("/:id", iuranHandler.Get)
			iuran.POST("", requireAdmin, iuranHandler.Create)
			iuran.PUT("/:id", requireAdmin, iuranHandler.Update)
			iuran.DELETE("/:id", requireAdmin, iuranHandler.Delete)
		}

		// Ronda routes
		ronda := v1.Group("/ronda")
		{
			ronda.GET("/schedule", optionalAdmin, rondaHandler.Schedule)
			ronda.POST("/week/next", optionalAdmin, rondaHandler.NextWeek)
			ronda.POST("/week/prev", optionalAdmin, rondaHandler.PrevWeek)
			ronda.POST("/week/reset", optionalAdmin, rondaHandler.ResetWeek)
			ronda.GET("/:id", rondaHandler.Get)
			ronda.POST("", requireAdmin, rondaHandler.Create)
			ronda.PUT("/:id", requireAdmin, rondaHandler.Update)
			ronda.DELETE("/:id", requireAdmin, rondaHandler.Delete)
		}

		// Info routes
		info := v1.Group("/info")
		{
			info.GET("", optionalAdmin, infoHandler.List)
			info.GET("/:id", infoHandler.Get)
			info.POST("", requireAdmin, infoHandler.Create)
			info.PUT("/:id", requireAdmin, infoHandler.Update)
			info.DELETE("/:id", requireAdmin, infoHandler.Delete)
		}

		// Session routes
		session := v1.Group("/session")
		{
			session.GET("/theme", sessionHandler.State)
			session.PUT("/theme", sessionHandler.SetTheme)
			session.POST("/theme/toggle", sessionHandler.ToggleTheme)
			session.POST("/page", sessionHandler.SetPage)
		}

		// Data routes
		v1.POST("/data/refresh", requireAdmin, dataHandler.Refresh)
	}
}
