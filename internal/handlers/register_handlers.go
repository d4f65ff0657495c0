package handlers

import (
	"github.com/SscSPs/hawala_settlement/cmd/docs"
	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/SscSPs/hawala_settlement/internal/middleware"
	"github.com/SscSPs/hawala_settlement/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Infrastructure carries the optional pieces the routes need beyond the services.
type Infrastructure struct {
	DB              Pinger           // nil skips the database probe in /health
	TrackingLimiter *limiter.Limiter // nil leaves /public/track unthrottled
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	infra Infrastructure,
) {
	configureBinding()

	registerHealthRoutes(r, infra.DB)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupPublicRoutes(r, cfg, services, infra)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupPublicRoutes configures the unauthenticated /public group.
func setupPublicRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, infra Infrastructure) {
	public := r.Group("/public")

	var guards []gin.HandlerFunc
	if infra.TrackingLimiter != nil {
		guards = append(guards, middleware.RateLimit(infra.TrackingLimiter))
	}

	registerTrackingRoutes(public, services.Tracking, guards...)
	registerQuoteRoutes(public, services.Quote, cfg.DefaultFeePolicy())
	registerPublicRateRoutes(public, services.Rate)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	registerRateRoutes(v1, services.Rate)
	registerTransactionRoutes(v1, services.Transaction)
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
