package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/freightdev/openhwy-sub001/internal/http/request"
	"github.com/freightdev/openhwy-sub001/internal/http/response"
	"github.com/freightdev/openhwy-sub001/internal/service"
)

// Services bundles the use cases the API routes call.
type Services struct {
	Drivers   service.DriverService
	Documents service.DocumentService
}

// RegisterRoutes attaches the health and API routes to app. health lists the
// dependencies checked by /health.
func RegisterRoutes(app fiber.Router, svc Services, health ...Pinger) {
	app.Get("/health", HealthCheck(health...))
	app.Get("/healthz", Liveness())

	v1 := app.Group("/api/v1")
	v1.Get("/auth/me", Me())

	drivers := v1.Group("/drivers")
	drivers.Get("/", ListDrivers(svc.Drivers))
	drivers.Post("/", CreateDriver(svc.Drivers))
	drivers.Get("/:id", GetDriver(svc.Drivers))
	drivers.Patch("/:id", UpdateDriver(svc.Drivers))
	drivers.Delete("/:id", DeleteDriver(svc.Drivers))

	drivers.Get("/:id/documents", ListDocuments(svc.Documents))
	drivers.Post("/:id/documents", UploadDocument(svc.Documents))
	drivers.Get("/:id/documents/:docId", GetDocument(svc.Documents))
	drivers.Get("/:id/documents/:docId/content", DocumentContent(svc.Documents))
	drivers.Delete("/:id/documents/:docId", DeleteDocument(svc.Documents))
}

// Me godoc
// @Summary  Current caller identity and tenant
// @Tags     auth
// @Produce  json
// @Success  200 {object} response.Success[auth.RequestContext]
// @Failure  401 {object} response.Error
// @Router   /api/v1/auth/me [get]
func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, err := request.Context(c)
		if err != nil {
			return err
		}
		return response.OK(c, rc)
	}
}
