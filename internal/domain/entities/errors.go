package entities

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer. Callers wrap one of these sentinels
// with context and match with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrAuthorization     = errors.New("not authorized")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("concurrent modification")
	ErrExternalService   = errors.New("external service error")
	ErrNotFound          = errors.New("not found")
)

func Validationf(format string, args ...any) error {
	return wrapf(ErrValidation, format, args...)
}

func Authorizationf(format string, args ...any) error {
	return wrapf(ErrAuthorization, format, args...)
}

func InvalidTransitionf(format string, args ...any) error {
	return wrapf(ErrInvalidTransition, format, args...)
}

func Conflictf(format string, args ...any) error {
	return wrapf(ErrConflict, format, args...)
}

func NotFoundf(format string, args ...any) error {
	return wrapf(ErrNotFound, format, args...)
}

// ExternalServiceError wraps a collaborator failure (timeout, transport, malformed payload).
func ExternalServiceError(service string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrExternalService, service, err)
}

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
