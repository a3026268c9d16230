package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/freightdev/openhwy-sub001/internal/http/response"
)

// Pinger is a dependency the readiness check pings. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

// HealthCheck reports healthy only when every dependency answers within two seconds.
func HealthCheck(deps ...Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		for _, d := range deps {
			if d == nil {
				continue
			}
			if err := d.PingContext(ctx); err != nil {
				return response.Fail(c, fiber.StatusServiceUnavailable, "Dependency unavailable", "SERVICE_UNAVAILABLE")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// Liveness always answers 200.
func Liveness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
