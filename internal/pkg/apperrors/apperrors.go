// Package apperrors carries the error taxonomy shared by the pipelines and
// the HTTP layer. A legitimate "no match" is not an error and never appears
// here; it is modelled as a normal result.
package apperrors

import (
	stderrs "errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a failure so the controller can derive the HTTP status
// without inspecting messages.
type Kind int

const (
	// KindUnexpected is for unclassified failures, mapped to 500.
	KindUnexpected Kind = iota

	// KindInvalidInput is for bad request bodies or mode values, mapped to 400.
	KindInvalidInput

	// KindCollaborator is for detector/classifier/transcriber failures.
	// The enclosing request degrades to a partial-success response.
	KindCollaborator

	// KindTransport is for an unreachable lookup service, announced
	// distinctly from a not-found answer.
	KindTransport

	// KindFileAccess is for unreadable upload artifacts, mapped to 400.
	KindFileAccess
)

// Error is the structured error passed between services and controllers.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error without a wrapped cause.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap builds an Error around a cause.
func Wrap(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// Sentinels for the recognized failure modes of the upload pipelines.
var (
	ErrInvalidMode   = New(KindInvalidInput, "mode.set", "invalid mode value")
	ErrEmptyBody     = New(KindInvalidInput, "upload", "no file data received")
	ErrFileAccess    = New(KindFileAccess, "upload.read", "audio file could not be read")
	ErrTranscription = New(KindCollaborator, "audio.transcribe", "transcription failed")
)

// KindOf extracts the Kind from err, defaulting to KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if stderrs.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// HTTPStatus maps a failure kind to the status the upload surface promises.
// Collaborator failures intentionally stay 200: the artifact was saved, only
// the downstream processing degraded.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidInput, KindFileAccess:
		return fiber.StatusBadRequest
	case KindCollaborator:
		return fiber.StatusOK
	default:
		return fiber.StatusInternalServerError
	}
}
