package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/auth"
	"github.com/freightdev/openhwy-sub001/internal/http/request"
	"github.com/freightdev/openhwy-sub001/internal/http/response"
	"github.com/freightdev/openhwy-sub001/internal/logging"
)

// envelopeErrors renders returned errors the way the production handler does.
func envelopeErrors(c *fiber.Ctx, err error) error {
	f := apperror.Classify(err)
	return response.Fail(c, f.Status, f.Message, f.Code)
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(request.RequestID(c))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	t.Run("should replace unsafe request id", func(t *testing.T) {
		for _, bad := range []string{"a b", "id\"},{\"level\":\"error", strings.Repeat("x", 129)} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, bad)

			resp, _ := app.Test(req)

			got := resp.Header.Get(RequestIDHeader)
			assert.NotEqual(t, bad, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		}
	})
}

func readLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New(fiber.Config{ErrorHandler: envelopeErrors})
	loc := time.UTC

	app.Use(RequestID())
	app.Use(Logger(logging.New(&buf, "info", loc)))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperror.NotFound("Driver not found")
	})

	t.Run("response line", func(t *testing.T) {
		buf.Reset()
		resp, _ := app.Test(httptest.NewRequest("GET", "/test?page=2", nil))

		assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

		lines := readLines(t, &buf)
		require.Len(t, lines, 1, "api_request is debug level")
		logData := lines[0]
		assert.Equal(t, "api_response", logData["msg"])
		assert.NotEmpty(t, logData["request_id"])
		assert.Equal(t, "GET", logData["method"])
		assert.Equal(t, "/test", logData["path"])
		assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
		assert.NotNil(t, logData["duration_ms"])
		assert.NotEmpty(t, logData["ts"])
		assert.NotContains(t, logData, "error")
	})

	t.Run("returned error status", func(t *testing.T) {
		buf.Reset()
		resp, _ := app.Test(httptest.NewRequest("GET", "/missing", nil))

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		lines := readLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, float64(fiber.StatusNotFound), lines[0]["status"])
		assert.Equal(t, "Driver not found", lines[0]["error"])
	})
}

func TestLogger_DebugIncludesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(Logger(logging.New(&buf, "debug", time.UTC)))
	app.Get("/drivers", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	app.Test(httptest.NewRequest("GET", "/drivers?status=active", nil))

	lines := readLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "api_request", lines[0]["msg"])
	assert.Equal(t, "status=active", lines[0]["query"])
	assert.Equal(t, "api_response", lines[1]["msg"])
}

func TestLogger_TraceID(t *testing.T) {
	tracer := sdktrace.NewTracerProvider().Tracer("test")

	var buf bytes.Buffer
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		ctx, span := tracer.Start(c.UserContext(), "request")
		defer span.End()
		c.SetUserContext(ctx)
		return c.Next()
	})
	app.Use(Logger(logging.New(&buf, "info", time.UTC)))
	app.Get("/drivers", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	app.Test(httptest.NewRequest("GET", "/drivers", nil))

	lines := readLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0]["trace_id"], 32)
}

func TestAuthenticate(t *testing.T) {
	a, err := auth.NewJWTAuthenticator("test-secret", "")
	require.NoError(t, err)

	id := auth.Identity{UserID: uuid.NewString(), CompanyID: uuid.NewString(), Role: "admin"}
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := a.Sign(id, claims)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: envelopeErrors})
	app.Use(Authenticate(a))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, ok := request.Identity(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(id.UserID + "@" + id.CompanyID)
	})

	call := func(header string) (int, string) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return resp.StatusCode, buf.String()
	}

	t.Run("valid token", func(t *testing.T) {
		status, body := call("Bearer " + token)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, id.UserID+"@"+id.CompanyID, body)
	})

	t.Run("no header is anonymous", func(t *testing.T) {
		status, body := call("")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "anonymous", body)
	})

	t.Run("tampered token", func(t *testing.T) {
		status, body := call("Bearer " + token + "x")
		assert.Equal(t, fiber.StatusUnauthorized, status)

		var env response.Error
		require.NoError(t, json.Unmarshal([]byte(body), &env))
		assert.Equal(t, CodeInvalidToken, env.Code)
		assert.Equal(t, "Invalid or expired token", env.Error)
	})

	t.Run("non-uuid tenant", func(t *testing.T) {
		foreign, err := a.Sign(auth.Identity{UserID: "user_2abc", CompanyID: "org_2xyz"}, claims)
		require.NoError(t, err)

		status, body := call("Bearer " + foreign)
		assert.Equal(t, fiber.StatusUnauthorized, status)

		var env response.Error
		require.NoError(t, json.Unmarshal([]byte(body), &env))
		assert.Equal(t, CodeInvalidToken, env.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		status, _ := call("Basic dXNlcjpwYXNz")
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestID())
	app.Use(Recover(logging.New(&buf, "info", time.UTC), apperror.Classifier{}))
	app.Get("/value", func(c *fiber.Ctx) error { panic("nil map") })
	app.Get("/error", func(c *fiber.Ctx) error { panic(apperror.Forbidden("")) })
	app.Get("/plain", func(c *fiber.Ctx) error { panic(errors.New("db exploded")) })

	t.Run("non-error value", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("GET", "/value", nil))

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		var env response.Error
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.Equal(t, "An unexpected error occurred", env.Error)
		assert.Empty(t, env.Code)
		assert.Contains(t, buf.String(), "panic recovered")
	})

	t.Run("taxonomy error", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("GET", "/error", nil))
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("plain error is masked", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest("GET", "/plain", nil))

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		var env response.Error
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.Equal(t, "Internal server error", env.Error)
		assert.Equal(t, apperror.CodeInternal, env.Code)
	})
}
