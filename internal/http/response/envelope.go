package response

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// TimestampLayout renders envelope timestamps as UTC ISO-8601 with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Status codes used by the API.
const (
	StatusOK             = http.StatusOK
	StatusCreated        = http.StatusCreated
	StatusBadRequest     = http.StatusBadRequest
	StatusUnauthorized   = http.StatusUnauthorized
	StatusForbidden      = http.StatusForbidden
	StatusNotFound       = http.StatusNotFound
	StatusConflict       = http.StatusConflict
	StatusInternalError  = http.StatusInternalServerError
	StatusNotImplemented = http.StatusNotImplemented
)

// now is replaced in tests.
var now = time.Now

// Success wraps a single payload.
type Success[T any] struct {
	Success   bool   `json:"success"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp"`
}

// Pagination describes the page a Paginated envelope carries.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Paginated wraps one page of a list.
type Paginated[T any] struct {
	Success    bool       `json:"success"`
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Timestamp  string     `json:"timestamp"`
}

// Error is the body of every failed response.
type Error struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Timestamp returns the current time in envelope format.
func Timestamp() string {
	return now().UTC().Format(TimestampLayout)
}

// NewSuccess builds a success envelope. data is not inspected.
func NewSuccess[T any](data T) Success[T] {
	return Success[T]{Success: true, Data: data, Timestamp: Timestamp()}
}

// NewPaginated builds a paginated envelope.
//
// limit and page below 1 are coerced to 1 and a negative total to 0, so
// TotalPages is always ceil(total/limit). Callers are expected to pass at
// most limit items.
func NewPaginated[T any](items []T, total, page, limit int) Paginated[T] {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}
	if items == nil {
		items = []T{}
	}
	return Paginated[T]{
		Success: true,
		Data:    items,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: TotalPages(total, limit),
		},
		Timestamp: Timestamp(),
	}
}

// NewError builds an error envelope. The HTTP status travels separately.
func NewError(message, code string) Error {
	return Error{Success: false, Error: message, Code: code, Timestamp: Timestamp()}
}

// TotalPages is ceil(total/limit) in integer arithmetic.
func TotalPages(total, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// OK writes a 200 success envelope.
func OK[T any](c *fiber.Ctx, data T) error {
	return c.Status(StatusOK).JSON(NewSuccess(data))
}

// Created writes a 201 success envelope.
func Created[T any](c *fiber.Ctx, data T) error {
	return c.Status(StatusCreated).JSON(NewSuccess(data))
}

// Page writes a 200 paginated envelope.
func Page[T any](c *fiber.Ctx, items []T, total, page, limit int) error {
	return c.Status(StatusOK).JSON(NewPaginated(items, total, page, limit))
}

// Fail writes an error envelope with status. A zero status means 500.
func Fail(c *fiber.Ctx, status int, message, code string) error {
	if status == 0 {
		status = StatusInternalError
	}
	return c.Status(status).JSON(NewError(message, code))
}
