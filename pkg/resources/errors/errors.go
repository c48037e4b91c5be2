package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

var ErrBadRequest = fmt.Errorf("bad request")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrInternal = fmt.Errorf("internal error")
var ErrNoKeyField = fmt.Errorf("no key field")
var ErrNotFound = fmt.Errorf("not found")
var ErrNullNotAllowed = fmt.Errorf("null value not allowed")
var ErrRequiredValueMissing = fmt.Errorf("required value missing")
var ErrValidation = fmt.Errorf("validation failed")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewBadRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadRequest,
	}
}

func NewBadResponseError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadResponse,
	}
}

func NewInternalError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInternal,
	}
}

func NewNoKeyFieldError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNoKeyField,
	}
}

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewNullNotAllowedError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNullNotAllowed,
	}
}

func NewRequiredValueMissingError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrRequiredValueMissing,
	}
}

func NewValidationError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrValidation,
	}
}

// NewErrorFromProblemReport converts an RFC 7807 problem report returned by
// a remote API into one of the error values above. Responses that do not
// parse as problem reports are mapped by status code alone.
func NewErrorFromProblemReport(code int, contentType string, body []byte) error {
	report := &struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}{}

	detail := fmt.Sprintf("request failed with status code %d", code)

	err := json.Unmarshal(body, report)
	if err == nil && report.Detail != "" {
		detail = report.Detail
	}

	if code == http.StatusNotFound {
		return NewNotFoundError(detail)
	}

	if code >= http.StatusBadRequest && code < http.StatusInternalServerError {
		return NewBadRequestError(detail)
	}

	return NewInternalError(
		fmt.Sprintf("[code: %d] problem of type \"%s\" with detail \"%s\" received", code, report.Type, detail),
	)
}
