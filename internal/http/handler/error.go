package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/http/request"
	"github.com/freightdev/openhwy-sub001/internal/http/response"
)

// ErrorHandler returns the Fiber global error handler. Every error returned
// by a handler or middleware is classified and written as an error envelope.
// The raw error is logged; the client only sees the classified message.
// Server errors are also recorded on the request span.
func ErrorHandler(logger *slog.Logger, cl apperror.Classifier) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		f := cl.Classify(err)

		level := slog.LevelWarn
		if f.Status >= fiber.StatusInternalServerError {
			level = slog.LevelError
			span := trace.SpanFromContext(c.UserContext())
			span.RecordError(err)
			span.SetStatus(codes.Error, f.Message)
		}
		logger.Log(c.UserContext(), level, "request failed",
			slog.String("request_id", request.RequestID(c)),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", f.Status),
			slog.String("code", f.Code),
			slog.Any("error", err),
		)

		return response.Fail(c, f.Status, f.Message, f.Code)
	}
}
