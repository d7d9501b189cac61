// Package apperrors defines the failure kinds business code is allowed to
// surface and their mapping onto HTTP statuses. Handlers construct these at
// the point of detection and hand them to a single translator.
package apperrors

import "net/http"

type Kind int

const (
	KindValidation Kind = iota
	KindDuplicateEmail
	KindInvalidCredentials
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindRateLimited
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindDuplicateEmail:
		return http.StatusBadRequest
	case KindInvalidCredentials, KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func DuplicateEmail(message string) *Error {
	return &Error{Kind: KindDuplicateEmail, Message: message}
}

func InvalidCredentials(message string) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func RateLimited(message string) *Error {
	return &Error{Kind: KindRateLimited, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}
