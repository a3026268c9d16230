// Package repository defines data access for the API. Implementations live in
// subpackages (e.g., postgres) and return apperror.ErrDuplicate or
// apperror.ErrRecordMissing instead of driver-specific errors.
package repository

import "time"

// ListQuery holds pagination, sorting and filter parameters for list queries.
// Zero values mean "not filtered".
type ListQuery struct {
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
	Search    string
	Status    string
	From      *time.Time
	To        *time.Time
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
