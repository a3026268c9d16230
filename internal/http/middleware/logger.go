package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/http/request"
)

// LogRequest writes the api_request line at debug level.
func LogRequest(logger *slog.Logger, c *fiber.Ctx) {
	logger.LogAttrs(c.UserContext(), slog.LevelDebug, "api_request",
		slog.String("request_id", request.RequestID(c)),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("query", string(c.Request().URI().QueryString())),
	)
}

// LogResponse writes the api_response line. err is the error the handler
// chain returned, if any; only its text is logged. trace_id is added when the
// request is sampled.
func LogResponse(logger *slog.Logger, c *fiber.Ctx, status int, d time.Duration, err error) {
	attrs := []slog.Attr{
		slog.String("request_id", request.RequestID(c)),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.Int("status", status),
		slog.Float64("duration_ms", float64(d.Microseconds())/1000),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	if sc := trace.SpanContextFromContext(c.UserContext()); sc.IsValid() {
		attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
	}
	logger.LogAttrs(c.UserContext(), slog.LevelInfo, "api_response", attrs...)
}

// Logger logs each request and its outcome as JSON lines. A returned error is
// classified to report the status the error handler will write.
func Logger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		LogRequest(logger, c)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = apperror.Classify(err).Status
		}
		LogResponse(logger, c, status, time.Since(start), err)
		return err
	}
}
