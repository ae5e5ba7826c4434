package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tigrisline/tracking-gateway/internal/api/handler"
	"github.com/tigrisline/tracking-gateway/internal/core/ports"
)

// Deps bundles everything the router needs. Mongo and Redis clients may be
// nil; the readiness probe reports them as disabled.
type Deps struct {
	Tracking     ports.TrackingService
	ContactQueue handler.ContactEnqueuer
	Mongo        *mongo.Client
	Redis        *redis.Client
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(preflightOK)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(echoprometheus.NewMiddleware("tracking"))

	// --- Tracking routes ---
	trackingHandler := handler.NewTrackingHandler(deps.Tracking, deps.Log)
	e.GET("/v1/track/container", trackingHandler.TrackContainer)
	e.GET("/v1/track/air", trackingHandler.TrackAir)

	// --- Contact form ---
	contactHandler := handler.NewContactHandler(deps.ContactQueue, deps.Log)
	e.POST("/v1/contact", contactHandler.Submit)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// preflightOK answers CORS preflight with 200 and no body. The CORS
// middleware writes 204 for OPTIONS; browser clients of this API expect the
// historical 200, so the status is rewritten just before the header commits.
func preflightOK(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method == http.MethodOptions {
			res := c.Response()
			res.Before(func() {
				if res.Status == http.StatusNoContent {
					res.Status = http.StatusOK
				}
			})
		}
		return next(c)
	}
}
