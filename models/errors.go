package models

import "fmt"

// ErrorBadRequest covers malformed input and unmet workflow preconditions.
type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorValidation struct {
	Message string
	Fields  []FieldError
}

func (e ErrorValidation) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s %s", e.Message, e.Fields[0].Field, e.Fields[0].Message)
}

type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e ErrorInternalServer) Unwrap() error { return e.Err }

func BadRequest(message string) error {
	return ErrorBadRequest{Message: message}
}

func BadRequestf(format string, args ...interface{}) error {
	return ErrorBadRequest{Message: fmt.Sprintf(format, args...)}
}

func NotFound(message string) error {
	return ErrorNotFound{Message: message}
}

func Conflict(message string) error {
	return ErrorConflict{Message: message}
}

func Conflictf(format string, args ...interface{}) error {
	return ErrorConflict{Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) error {
	return ErrorUnauthorized{Message: message}
}
