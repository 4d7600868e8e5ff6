package services

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindStorage
)

// AppError is an error with a category that maps to an HTTP status
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error kind
func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindStorage:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func ValidationError(msg string) error {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NotFoundError(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

// StorageError wraps an engine failure; the engine message is passed through
func StorageError(msg string, err error) error {
	return &AppError{Kind: KindStorage, Message: msg, Err: err}
}

// IsKind reports whether err is an AppError of kind
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
