package api

// Error is the normalized API failure: a human-readable message plus the
// originating HTTP status. Status is 0 for failures that never produced a
// response (transport errors, missing token).
type Error struct {
	Message string
	Status  int

	err error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the sentinel wrapped inside, so callers can use errors.Is
// with common.ErrUnavailable, common.ErrorUnauthorized or common.ErrMissingToken.
func (e *Error) Unwrap() error { return e.err }
