// Package apperr defines the error kinds every service operation returns.
// Callers match them with errors.Is against the sentinel values.
package apperr

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrInternal   = errors.New("internal error")
)

// ValidationError lists the fields that were missing and the ones that were
// present but malformed.
type ValidationError struct {
	Missing []string
	Invalid map[string]string
}

func (e *ValidationError) Error() string {
	var parts []string

	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}

	for _, field := range slices.Sorted(maps.Keys(e.Invalid)) {
		parts = append(parts, field+" "+e.Invalid[field])
	}

	if len(parts) == 0 {
		return ErrValidation.Error()
	}

	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Empty reports whether nothing was recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

func (e *ValidationError) AddMissing(field string) {
	e.Missing = append(e.Missing, field)
}

func (e *ValidationError) AddInvalid(field, reason string) {
	if e.Invalid == nil {
		e.Invalid = make(map[string]string)
	}
	e.Invalid[field] = reason
}

// OrNil returns nil when no problem was recorded, so validators can build the
// error as they go and return it unconditionally.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func Conflict(reason string) error {
	return &ConflictError{Reason: reason}
}

// Internal wraps an unexpected failure. The cause is kept for logging but
// never shown to the caller. Errors that already carry a kind are returned
// unchanged.
func Internal(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrInternal):
		return err
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

// Status maps an error kind to the HTTP status code the transport answers with.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the human readable text that is safe to send to a client.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "Internal server error"
	}

	msg := err.Error()
	if msg == "" {
		return msg
	}

	return strings.ToUpper(msg[:1]) + msg[1:]
}
