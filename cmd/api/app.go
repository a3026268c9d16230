package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/freightdev/openhwy-sub001/docs"
	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/auth"
	"github.com/freightdev/openhwy-sub001/internal/config"
	handlers "github.com/freightdev/openhwy-sub001/internal/http/handler"
	"github.com/freightdev/openhwy-sub001/internal/http/middleware"
	"github.com/freightdev/openhwy-sub001/internal/http/request"
)

// server holds what the HTTP app is built from.
type server struct {
	cfg           *config.AppConfig
	logger        *slog.Logger
	registry      *prometheus.Registry
	authenticator auth.Authenticator
	services      handlers.Services
	health        []handlers.Pinger
}

// newApp builds the fiber app with its middleware chain and routes.
// Recover sits inside the metrics and logging middleware so a panicking
// request is still counted and logged with its 500.
func newApp(s server) (*fiber.App, error) {
	cl := apperror.Classifier{ExposeInternal: s.cfg.ExposeInternalErrors}

	metrics, err := middleware.NewPrometheusMiddleware(s.registry)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      s.cfg.ServiceName,
		BodyLimit:    s.cfg.BodyLimitBytes,
		ErrorHandler: handlers.ErrorHandler(s.logger, cl),
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(s.cfg.CORS.AllowedOrigins, ","),
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + middleware.RequestIDHeader,
		ExposeHeaders: middleware.RequestIDHeader,
	}))
	app.Use(metrics.Handler())
	app.Use(middleware.Logger(s.logger))
	app.Use(middleware.Recover(s.logger, cl))
	if s.cfg.RateLimit.Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:          s.cfg.RateLimit.Max,
			Expiration:   time.Duration(s.cfg.RateLimit.WindowSec) * time.Second,
			KeyGenerator: request.RateLimitKey,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/metrics" || c.Path() == "/healthz"
			},
			LimitReached: func(c *fiber.Ctx) error {
				return apperror.New("Too many requests", fiber.StatusTooManyRequests, "RATE_LIMITED")
			},
		}))
	}
	app.Use(middleware.Authenticate(s.authenticator))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, s.services, s.health...)
	return app, nil
}
