// Package errors is the project error type: a code for machines, a message for
// people, and optionally the input field and operation that failed.
// Import it as perr.
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a failure. On the wire it is the snake case name
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic marks a recovered panic
	ErrorCodePanic
	// ErrorCodeUnavailable is cancelled or timed out work; a retry may succeed
	ErrorCodeUnavailable
	// ErrorCodeInvalidArgument is input refused before scanning, eg text over the size limit
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is a request body failing its struct rules
	ErrorCodeValidation
	// ErrorCodeJSON is a body that is not the expected JSON
	ErrorCodeJSON
	ErrorCodeNotFound
	// ErrorCodeNoMatch is text that conforms to no (or not the requested) date format
	ErrorCodeNoMatch
	// ErrorCodeUnknownFormat is a format name missing from the catalog
	ErrorCodeUnknownFormat
	// ErrorCodeNormalization is a matched fragment that did not yield valid calendar fields
	ErrorCodeNormalization

	numCodes
)

var codes = [numCodes]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeNoMatch:         {"no_match", http.StatusNotFound},
	ErrorCodeUnknownFormat:   {"unknown_format", http.StatusBadRequest},
	ErrorCodeNormalization:   {"normalization", http.StatusUnprocessableEntity},
}

func (c ErrorCode) valid() ErrorCode {
	if c >= numCodes {
		return ErrorCodeUnknown
	}
	return c
}

func (c ErrorCode) String() string { return codes[c.valid()].name }

// MarshalText writes the name, so JSON carries "no_match" rather than 7
func (c ErrorCode) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText accepts any name; unrecognized ones decode to ErrorCodeUnknown
func (c *ErrorCode) UnmarshalText(b []byte) error {
	*c = ErrorCodeUnknown
	for i := range codes {
		if codes[i].name == string(b) {
			*c = ErrorCode(i)
		}
	}
	return nil
}

// HTTPStatusCode maps a code to the status the API answers with
func HTTPStatusCode(c ErrorCode) int { return codes[c.valid()].status }

// Error is the structured error. Values are treated as immutable; the With
// helpers return modified copies
type Error struct {
	code  ErrorCode
	msg   string
	cause error
	field string // request field or normalization stage
	op    string
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause == nil:
		return e.msg
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

func (e *Error) Unwrap() error   { return e.cause }
func (e *Error) Code() ErrorCode { return e.code }
func (e *Error) Field() string   { return e.field }
func (e *Error) Op() string      { return e.op }

func (e *Error) with() *Error {
	c := *e
	return &c
}

// Wire is the error part of an API response
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// WireFrom describes any error; errors from outside this package are unknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	w := Wire{Code: ErrorCodeUnknown, Message: err.Error()}
	if e, ok := As(err); ok {
		w.Code, w.Field = e.code, e.field
	}
	return w
}

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// Root follows Unwrap to the innermost cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// CodeOf returns err's code, ErrorCodeUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode is false for nil
func IsCode(err error, code ErrorCode) bool { return err != nil && CodeOf(err) == code }

// HTTPStatus is HTTPStatusCode(CodeOf(err))
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WithField tags the offending input; foreign errors are returned unchanged
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := e.with()
	c.field = field
	return c
}

// WithOp tags the failing operation, eg "datescan.ParseAs"
func WithOp(err error, op string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := e.with()
	c.op = op
	return c
}

func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func Newf(code ErrorCode, format string, a ...any) error {
	return New(code, fmt.Sprintf(format, a...))
}

// Wrap keeps cause reachable through errors.Is and errors.As
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

func InvalidArgf(format string, a ...any) error    { return Newf(ErrorCodeInvalidArgument, format, a...) }
func NoMatchf(format string, a ...any) error       { return Newf(ErrorCodeNoMatch, format, a...) }
func UnknownFormatf(format string, a ...any) error { return Newf(ErrorCodeUnknownFormat, format, a...) }
func JSONErrf(format string, a ...any) error       { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error      { return Newf(ErrorCodePanic, format, a...) }
