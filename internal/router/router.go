package router

import (
	"github.com/gin-gonic/gin"

	"maniflow/internal/config"
	"maniflow/internal/handler"
	"maniflow/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	manifestH *handler.ManifestHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	manifests := v1.Group("/manifests")
	manifests.POST("/decode", manifestH.Decode)
	manifests.GET("", manifestH.List)
	manifests.GET("/sample", manifestH.Sample)
	manifests.GET("/:id", manifestH.GetByID)
	manifests.DELETE("/:id", manifestH.Delete)
	manifests.GET("/:id/raw", manifestH.RawDownloadURL)
	manifests.GET("/:id/export/csv", manifestH.ExportCSV)
	manifests.GET("/:id/export/xlsx", manifestH.ExportXLSX)

	return r
}
