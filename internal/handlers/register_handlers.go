package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/naveenakasaragadda1/Timesheet-Server/cmd/docs"
	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/middleware"
	"github.com/naveenakasaragadda1/Timesheet-Server/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Employee tier, header auth only
	employeeGroup := r.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerTimesheetRoutes(employeeGroup, services.Timesheet, services.Exporter)

	// Admin tier
	adminGroup := r.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin())
	// The single-record download additionally accepts a query token so
	// browsers can fetch it without setting headers.
	adminDownloadGroup := r.Group("/admin", middleware.AuthMiddlewareWithQueryFallback(cfg.JWTSecret), middleware.RequireAdmin())

	registerEmployeeAdminRoutes(adminGroup, services.User)
	registerAdminTimesheetRoutes(adminGroup, adminDownloadGroup, services.Timesheet, services.Exporter)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
