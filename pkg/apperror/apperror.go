// Package apperror defines the typed errors surfaced by the API. Each error
// carries a machine-readable code and the HTTP status it maps to at the
// delivery boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation          = "ValidationError"
	CodeInvalidToken        = "InvalidToken"
	CodeTokenExchangeFailed = "TokenExchangeFailed"
	CodeUnauthenticated     = "UnauthenticatedError"
	CodeUnauthorized        = "UnauthorizedError"
	CodeNotFound            = "NotFoundError"
	CodeConflict            = "ConflictError"
	CodeUnknown             = "UnknownError"
)

type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

func InvalidToken(message string) *Error {
	return &Error{Code: CodeInvalidToken, Message: message, Status: http.StatusBadRequest}
}

func TokenExchangeFailed(message string) *Error {
	return &Error{Code: CodeTokenExchangeFailed, Message: message, Status: http.StatusBadRequest}
}

func Unauthenticated() *Error {
	return &Error{Code: CodeUnauthenticated, Message: "authentication is required", Status: http.StatusUnauthorized}
}

func Unauthorized(resourceName, resourceID string) *Error {
	return &Error{
		Code:    CodeUnauthorized,
		Message: fmt.Sprintf("not allowed to access %s %s", resourceName, resourceID),
		Status:  http.StatusForbidden,
	}
}

func NotFound(resourceName, resourceID string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s was not found", resourceName, resourceID),
		Status:  http.StatusNotFound,
	}
}

func Conflict(resourceName, resourceID string) *Error {
	return &Error{
		Code:    CodeConflict,
		Message: fmt.Sprintf("conflicting state for %s %s", resourceName, resourceID),
		Status:  http.StatusConflict,
	}
}

func Unknown() *Error {
	return &Error{Code: CodeUnknown, Message: "an unknown error has occurred", Status: http.StatusInternalServerError}
}

// From returns err as an *Error, or Unknown for untyped errors so internals
// never leak to the caller.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Unknown()
}
