package apperror

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	msgInvalidJSON   = "Invalid JSON"
	msgDuplicate     = "Resource already exists"
	msgNotFound      = "Resource not found"
	msgInternal      = "Internal server error"
	msgUnexpected    = "An unexpected error occurred"
	legacyUniqueText = "Unique constraint"
	legacyMissingTxt = "Record to delete does not exist"
)

// Failure is the client-facing shape of a classified error.
type Failure struct {
	Status  int
	Message string
	Code    string
}

// Classifier maps arbitrary errors onto the taxonomy.
//
// ExposeInternal controls whether unclassified errors keep their raw message
// in the response. It is off by default because driver text and wrapped
// context would otherwise reach clients.
type Classifier struct {
	ExposeInternal bool
}

// Classify maps err with the default, masking Classifier.
func Classify(err error) Failure {
	return Classifier{}.Classify(err)
}

// Classify never fails: every input, including nil, yields a Failure.
func (cl Classifier) Classify(err error) Failure {
	if err == nil {
		return Failure{Status: http.StatusInternalServerError, Message: msgUnexpected}
	}

	if e, ok := As(err); ok {
		status := e.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return Failure{Status: status, Message: e.Message, Code: e.Code}
	}

	if isJSONError(err) {
		return Failure{Status: http.StatusBadRequest, Message: msgInvalidJSON, Code: CodeInvalidJSON}
	}

	if errors.Is(err, ErrDuplicate) || strings.Contains(err.Error(), legacyUniqueText) {
		return Failure{Status: http.StatusConflict, Message: msgDuplicate, Code: CodeDuplicateEntry}
	}

	if errors.Is(err, ErrRecordMissing) || errors.Is(err, sql.ErrNoRows) || strings.Contains(err.Error(), legacyMissingTxt) {
		return Failure{Status: http.StatusNotFound, Message: msgNotFound, Code: CodeNotFound}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Failure{Status: fe.Code, Message: fe.Message, Code: CodeForStatus(fe.Code)}
	}

	msg := msgInternal
	if cl.ExposeInternal {
		msg = err.Error()
	}
	return Failure{Status: http.StatusInternalServerError, Message: msg, Code: CodeInternal}
}

// ClassifyPanic classifies a value recovered from a panic. Non-error values
// get the generic 500 without a code.
func (cl Classifier) ClassifyPanic(v any) Failure {
	if err, ok := v.(error); ok {
		return cl.Classify(err)
	}
	return Failure{Status: http.StatusInternalServerError, Message: msgUnexpected}
}

// CodeForStatus returns the taxonomy code for status, or the upper-snake
// status text for statuses outside the taxonomy.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusInternalServerError:
		return CodeInternal
	case http.StatusNotImplemented:
		return CodeNotImplemented
	}
	text := http.StatusText(status)
	if text == "" {
		return CodeInternal
	}
	text = strings.ReplaceAll(text, "-", " ")
	text = strings.ReplaceAll(text, "'", "")
	return strings.ToUpper(strings.Join(strings.Fields(text), "_"))
}

func isJSONError(err error) bool {
	if errors.Is(err, ErrInvalidJSON) {
		return true
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
