package request

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/auth"
)

// Locals keys shared with the middleware package.
const (
	IdentityLocalKey  = "identity"
	RequestIDLocalKey = "request_id"
)

const msgAuthRequired = "Authentication required"

// SetIdentity stores the authenticated caller for the rest of the request.
func SetIdentity(c *fiber.Ctx, id *auth.Identity) {
	c.Locals(IdentityLocalKey, id)
}

// Identity returns the caller resolved by the authentication middleware, if any.
func Identity(c *fiber.Ctx) (*auth.Identity, bool) {
	id, ok := c.Locals(IdentityLocalKey).(*auth.Identity)
	return id, ok && id != nil
}

// RequestID returns the id assigned by the RequestID middleware.
func RequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(RequestIDLocalKey).(string)
	return s
}

// RequireAuth returns the caller or an Auth error when the request is anonymous.
func RequireAuth(c *fiber.Ctx) (*auth.Identity, error) {
	id, ok := Identity(c)
	if !ok {
		return nil, apperror.Auth(msgAuthRequired)
	}
	return id, nil
}

// RequireRole is RequireAuth plus a case-insensitive role check.
func RequireRole(c *fiber.Ctx, allowed ...string) (*auth.Identity, error) {
	id, err := RequireAuth(c)
	if err != nil {
		return nil, err
	}
	role := strings.TrimSpace(id.Role)
	for _, r := range allowed {
		if strings.EqualFold(role, strings.TrimSpace(r)) {
			return id, nil
		}
	}
	return nil, apperror.Forbidden("Insufficient role")
}

// CompanyContext resolves the caller's tenant. Every multi-tenant query
// filters on the returned CompanyID.
func CompanyContext(c *fiber.Ctx) (auth.Tenant, error) {
	id, err := RequireAuth(c)
	if err != nil {
		return auth.Tenant{}, err
	}
	if id.CompanyID == "" {
		return auth.Tenant{}, apperror.Forbidden("No company associated with this account")
	}
	return id.Tenant(), nil
}

// UserContext is the nullable variant of Context: it returns nil for
// anonymous requests instead of an error.
func UserContext(c *fiber.Ctx) *auth.RequestContext {
	id, ok := Identity(c)
	if !ok {
		return nil
	}
	return &auth.RequestContext{Identity: *id, Tenant: id.Tenant(), RequestID: RequestID(c)}
}

// Context builds the RequestContext for an authenticated request.
func Context(c *fiber.Ctx) (auth.RequestContext, error) {
	tenant, err := CompanyContext(c)
	if err != nil {
		return auth.RequestContext{}, err
	}
	id, _ := Identity(c)
	return auth.RequestContext{Identity: *id, Tenant: tenant, RequestID: RequestID(c)}, nil
}

// RateLimitKey identifies the client for rate limiting: the first
// X-Forwarded-For hop, then X-Real-IP, then the peer address.
func RateLimitKey(c *fiber.Ctx) string {
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if real := strings.TrimSpace(c.Get("X-Real-IP")); real != "" {
		return real
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}
