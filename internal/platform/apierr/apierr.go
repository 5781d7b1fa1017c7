package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the failure class surfaced to clients.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindProvider   Kind = "provider"
	KindForbidden  Kind = "forbidden"
	KindInternal   Kind = "internal"
)

type Error struct {
	Status int
	Code   string
	Kind   Kind
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Kind: kindForStatus(status), Err: err}
}

func NotFound(code string, err error) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Kind: KindNotFound, Err: err}
}

func Validation(code string, err error) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Kind: KindValidation, Err: err}
}

// Provider marks a failure of the upstream model provider. The provider's
// own error text is kept as the message.
func Provider(code string, err error) *Error {
	return &Error{Status: http.StatusBadGateway, Code: code, Kind: KindProvider, Err: err}
}

func Forbidden(code string, err error) *Error {
	return &Error{Status: http.StatusForbidden, Code: code, Kind: KindForbidden, Err: err}
}

func Internal(code string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: code, Kind: KindInternal, Err: err}
}

// From returns the first *Error in err's chain, or wraps err as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae
	}
	return Internal("internal_error", err)
}

// Is reports whether err carries an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae != nil && ae.Kind == kind
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusBadGateway:
		return KindProvider
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindInternal
	}
}
