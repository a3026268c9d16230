package apperror

import (
	"net/http"
	"reflect"
)

// AssertExists returns value unchanged when it is set, otherwise a NotFound
// error carrying message. Nil pointers, nil interfaces, empty strings and
// other zero values count as missing.
func AssertExists[T any](value T, message string) (T, error) {
	if isZero(value) {
		var zero T
		return zero, NotFound(message)
	}
	return value, nil
}

// AssertAuth returns an Auth error when user is missing.
func AssertAuth[T any](user T, message string) error {
	if isZero(user) {
		return Auth(message)
	}
	return nil
}

// Assert returns a generic error with statusCode when cond is false.
// A zero statusCode means 400.
func Assert(cond bool, message string, statusCode int) error {
	if cond {
		return nil
	}
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return New(message, statusCode, "")
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || rv.IsZero()
}
