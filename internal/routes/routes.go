// Package routes defines HTTP routes for the movie service.
package routes

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Ernest-Dike/Movie-recommendation-latest/docs"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/config"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/handlers"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/metrics"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/middleware"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/service"
	"github.com/Ernest-Dike/Movie-recommendation-latest/web"
)

// Handlers bundles the HTTP handlers wired into the route table.
type Handlers struct {
	Auth   *handlers.AuthHandler
	User   *handlers.UserHandler
	Movie  *handlers.MovieHandler
	Health *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, cfg *config.Config, h Handlers, authService service.AuthService, m *metrics.Metrics) {
	router.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}))
	router.Use(middleware.Timeout(cfg.RequestTimeout))
	if m != nil {
		router.Use(m.Middleware())
	}

	// Health check
	router.GET("/health", h.Health.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		protected := api.Group("")
		protected.Use(middleware.Auth(authService))
		{
			protected.GET("/users/profile", h.User.Profile)
			protected.POST("/movies", h.Movie.Upsert)
			protected.DELETE("/movies/:movieId", h.Movie.Remove)
		}
	}

	// Embedded single-page frontend
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		router.StaticFS("/static", http.FS(staticFS))
		router.GET("/", func(c *gin.Context) {
			c.FileFromFS("/", http.FS(staticFS))
		})
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
