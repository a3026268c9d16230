package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/auth"
	"github.com/freightdev/openhwy-sub001/internal/http/request"
)

// CodeInvalidToken marks a bearer token that failed verification.
const CodeInvalidToken = "INVALID_TOKEN"

// Authenticate resolves the caller from an "Authorization: Bearer" header.
// Requests without the header continue anonymously; handlers decide whether
// an identity is required. A header that is present but unverifiable fails
// the request with 401.
func Authenticate(a auth.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return c.Next()
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return apperror.Auth("Invalid authorization header").WithCode(CodeInvalidToken)
		}

		id, err := a.Authenticate(c.UserContext(), strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, auth.ErrNoCredentials) {
				return c.Next()
			}
			return apperror.Auth("Invalid or expired token").WithCode(CodeInvalidToken).WithCause(err)
		}
		request.SetIdentity(c, id)
		return c.Next()
	}
}
