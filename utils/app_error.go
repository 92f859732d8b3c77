package utils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindAdapter    ErrorKind = "adapter"
	KindStorage    ErrorKind = "storage"
)

// AppError is the error every externally reachable operation reports.
// Message is safe to show to clients; Err is only logged.
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

func (e *AppError) Unwrap() error { return e.Err }

func ValidationError(message string) error {
	return &AppError{Kind: KindValidation, Message: message}
}

func NotFoundError(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func AdapterError(message string, err error) error {
	return &AppError{Kind: KindAdapter, Message: message, Err: err}
}

func StorageError(message string, err error) error {
	return &AppError{Kind: KindStorage, Message: message, Err: err}
}

var statusByKind = map[ErrorKind]int{
	KindValidation: fiber.StatusBadRequest,
	KindNotFound:   fiber.StatusNotFound,
	KindAdapter:    fiber.StatusInternalServerError,
	KindStorage:    fiber.StatusInternalServerError,
}

// StatusCode maps an error onto its HTTP status.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if code, ok := statusByKind[appErr.Kind]; ok {
			return code
		}
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// PublicMessage is the message rendered in the response envelope.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Message
	}
	return "Internal server error"
}

// Kind returns the error kind, or an empty kind for unclassified errors.
func Kind(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}
