package apperror

import "errors"

// Storage-level failures. Repositories wrap driver errors with these so the
// dispatcher can classify them without reading driver messages.
var (
	ErrDuplicate     = errors.New("duplicate entry")
	ErrRecordMissing = errors.New("record does not exist")
)
