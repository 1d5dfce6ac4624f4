package status

import (
	"errors"
	"fmt"
)

// Error is a parse failure. The taxonomy is closed: either the stream ended
// in the middle of the grammar (ErrUnexpectedEOF, no response is sent), or a
// grammar rule was violated (ErrIllegalCharacter, 400), or a lower-level
// failure was wrapped via Generic with a caller-chosen code.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func NewError(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Generic wraps a lower-level failure, e.g. an invalid text encoding,
// pairing it with the status code the caller wants reported.
func Generic(cause error, code Code) *Error {
	return &Error{
		Code:    code,
		Message: cause.Error(),
		Cause:   cause,
	}
}

func (e *Error) Error() string {
	if e.Code == NoResponse {
		return e.Message + " (no response sent to client)"
	}

	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Code)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

var (
	ErrUnexpectedEOF    = NewError(NoResponse, "unexpected end of stream")
	ErrIllegalCharacter = NewError(BadRequest, "illegal character")
)

// ResponseCode maps an error to the status code that should be sent back.
// ok is false when the connection must be closed without a response.
// Errors from outside the taxonomy count as internal ones.
func ResponseCode(err error) (code Code, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		if e.Code == NoResponse {
			return NoResponse, false
		}

		return e.Code, true
	}

	return InternalServerError, true
}
