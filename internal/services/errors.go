package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrExternal      = errors.New("external service error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternal
	}
	if err != nil {
		return &wrappedError{marker: marker, detail: detail, message: message, cause: err}
	}
	return &wrappedError{marker: marker, detail: detail, message: message}
}

type wrappedError struct {
	marker  error
	detail  string
	message string
	cause   error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.marker, e.detail, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.marker, e.detail)
}

func (e *wrappedError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.marker, e.cause}
	}
	return []error{e.marker}
}

// Message returns the user-facing description of err: the Wrap message when
// one exists, otherwise the innermost cause text, otherwise fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var wrapped *wrappedError
	if errors.As(err, &wrapped) {
		if msg := strings.TrimSpace(wrapped.message); msg != "" {
			if wrapped.cause != nil {
				return msg + ": " + Message(wrapped.cause, wrapped.cause.Error())
			}
			return msg
		}
		if wrapped.cause != nil {
			return Message(wrapped.cause, fallback)
		}
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}

// HTTPStatus maps an error to the status code transport layers should return.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrExternal):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
