package routes

import (
	"mediahub/internal/handlers"
	"mediahub/internal/logging"
	"mediahub/internal/middleware"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the endpoint handlers mounted by New
type Handlers struct {
	Health *handlers.HealthHandlers
	Auth   *handlers.AuthHandlers
	Images *handlers.ImageHandlers
	Links  *handlers.LinkHandlers
}

// Options configures the global middleware and the auth gate
type Options struct {
	Logger         zerolog.Logger
	CORSOrigins    []string
	BodyLimit      string
	TokenValidator middleware.TokenValidator
	// AuthRateLimiter throttles register and login; nil disables throttling
	AuthRateLimiter echoMiddleware.RateLimiterStore
}

// New builds the echo instance with every route under /api
func New(h Handlers, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(opts.Logger)

	// Global middleware
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Recover())
	e.Use(logging.RequestLogger(opts.Logger))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{AllowOrigins: opts.CORSOrigins}))
	if opts.BodyLimit != "" {
		e.Use(echoMiddleware.BodyLimit(opts.BodyLimit))
	}

	api := e.Group("/api")

	// Health endpoints (no auth required)
	api.GET("/health", h.Health.HealthCheck)
	api.GET("/health/ready", h.Health.ReadinessCheck)

	auth := api.Group("/auth", middleware.RateLimit(opts.AuthRateLimiter))
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	requireAuth := middleware.RequireAuth(opts.TokenValidator)

	// Get-by-id stays public for both resources
	images := api.Group("/images")
	images.GET("/:id", h.Images.GetImage)
	images.GET("", h.Images.ListImages, requireAuth)
	images.POST("", h.Images.CreateImages, requireAuth)
	images.POST("/upload", h.Images.UploadImage, requireAuth)
	images.PUT("/:id", h.Images.UpdateImages, requireAuth)
	images.DELETE("/:id", h.Images.DeleteImage, requireAuth)
	images.DELETE("/delete-all/:id", h.Images.DeleteAllImages, requireAuth)

	links := api.Group("/links")
	links.GET("/:id", h.Links.GetLink)
	links.GET("", h.Links.ListLinks, requireAuth)
	links.POST("", h.Links.CreateLink, requireAuth)
	links.PUT("/:id", h.Links.UpdateLink, requireAuth)
	links.DELETE("/:id", h.Links.DeleteLink, requireAuth)

	return e
}
