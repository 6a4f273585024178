// Package apperr defines the error taxonomy shared by services and
// handlers. Services return errors tagged with a Kind; handlers map the
// kind to an HTTP status without inspecting message text.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindStore is the default for untagged errors: something failed in
	// the backing store or below it.
	KindStore Kind = iota
	KindValidation
	KindDuplicate
	KindInvalidCredentials
	KindNotFound
	KindNotPending
	KindNoFieldsToUpdate
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error with a human-readable message.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with formatting.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error while keeping it unwrappable.
func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err, or KindStore when it carries none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// Message returns err's user-facing message. Untagged errors get a
// generic message so internals never leak into responses.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
