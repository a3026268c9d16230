package request

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/repository"
)

// Pagination and sorting defaults.
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	MaxLimit         = 100
	DefaultSortBy    = "created_at"
	DefaultSortOrder = SortDesc

	SortAsc  = "asc"
	SortDesc = "desc"
)

const dateOnly = "2006-01-02"

// QueryParams is the validated form of the list query string.
// Empty strings mean the filter was not supplied.
type QueryParams struct {
	Page      int
	Limit     int
	Skip      int
	SortBy    string
	SortOrder string
	Search    string
	Status    string
	CompanyID string
	StartDate *time.Time
	EndDate   *time.Time
}

// ListQuery converts the parameters into a repository query.
func (q QueryParams) ListQuery() repository.ListQuery {
	return repository.ListQuery{
		Limit:     q.Limit,
		Offset:    q.Skip,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Search:    q.Search,
		Status:    q.Status,
		From:      q.StartDate,
		To:        q.EndDate,
	}
}

// Query extracts QueryParams from the request's query string.
func Query(c *fiber.Ctx) (QueryParams, error) {
	return ParseQuery(func(key string) string { return c.Query(key) })
}

// ParseQuery builds QueryParams from lookup.
//
// page falls back to 1 when missing, non-numeric or below 1; limit falls back
// to 10 and is clamped to [1,100]; sortOrder is asc or desc (any other value
// becomes desc). Only malformed dates are rejected.
func ParseQuery(lookup func(key string) string) (QueryParams, error) {
	get := func(key string) string { return strings.TrimSpace(lookup(key)) }

	page := parseInt(get("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	limit := clamp(parseInt(get("limit"), DefaultLimit), 1, MaxLimit)

	sortBy := get("sortBy")
	if sortBy == "" {
		sortBy = DefaultSortBy
	}

	q := QueryParams{
		Page:      page,
		Limit:     limit,
		Skip:      (page - 1) * limit,
		SortBy:    sortBy,
		SortOrder: normalizeSortOrder(get("sortOrder")),
		Search:    get("search"),
		Status:    get("status"),
		CompanyID: get("companyId"),
	}

	var err error
	if q.StartDate, err = parseDate("startDate", get("startDate"), false); err != nil {
		return QueryParams{}, err
	}
	if q.EndDate, err = parseDate("endDate", get("endDate"), true); err != nil {
		return QueryParams{}, err
	}
	if q.StartDate != nil && q.EndDate != nil && q.StartDate.After(*q.EndDate) {
		return QueryParams{}, apperror.Validation("startDate must not be after endDate")
	}
	return q, nil
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func normalizeSortOrder(s string) string {
	if strings.EqualFold(s, SortAsc) {
		return SortAsc
	}
	return SortDesc
}

// parseDate accepts RFC 3339 or YYYY-MM-DD. A date-only end bound covers the
// whole day.
func parseDate(field, s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return nil, apperror.Validation(field + " must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
