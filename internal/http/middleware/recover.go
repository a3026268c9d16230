package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/http/request"
	"github.com/freightdev/openhwy-sub001/internal/http/response"
)

// Recover turns a panic in a later handler into an error envelope. Panics
// carrying an error are classified like returned errors; any other value
// becomes a 500 without a code.
func Recover(logger *slog.Logger, cl apperror.Classifier) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			logger.LogAttrs(c.UserContext(), slog.LevelError, "panic recovered",
				slog.String("request_id", request.RequestID(c)),
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			f := cl.ClassifyPanic(r)
			err = response.Fail(c, f.Status, f.Message, f.Code)
		}()
		return c.Next()
	}
}
