package errors

import (
	goerrors "errors"
	"fmt"
)

// Base kinds. Every error surfaced to a client wraps exactly one of them.
var (
	ErrValidation   = fmt.Errorf("validation failed")
	ErrNotFound     = fmt.Errorf("not found")
	ErrConflict     = fmt.Errorf("conflict")
	ErrUnreachable  = fmt.Errorf("target unreachable")
	ErrStoreFailure = fmt.Errorf("store failure")
)

var (
	ErrRoomNotFound    = fmt.Errorf("%w: room", ErrNotFound)
	ErrMessageNotFound = fmt.Errorf("%w: message", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrCallNotFound    = fmt.Errorf("%w: call", ErrNotFound)

	ErrRoomAlreadyExists       = fmt.Errorf("%w: room already exists", ErrConflict)
	ErrTempIDTaken             = fmt.Errorf("%w: temp id already used", ErrConflict)
	ErrPrivateRoomParticipants = fmt.Errorf("%w: a private room has exactly two participants", ErrValidation)
	ErrUnknownEvent            = fmt.Errorf("%w: unknown event", ErrValidation)
	ErrMalformedPayload        = fmt.Errorf("%w: malformed payload", ErrValidation)
	ErrNotSubscribed           = fmt.Errorf("%w: connection has not subscribed", ErrValidation)
	ErrUnauthorized            = fmt.Errorf("%w: identity does not match token", ErrValidation)

	ErrConnectionClosed    = fmt.Errorf("connection closed")
	ErrConnectionSaturated = fmt.Errorf("connection buffer full")

	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")
)

// Kind is the wire name of an error family.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnreachable  Kind = "unreachable"
	KindStoreFailure Kind = "store_failure"
	KindInternal     Kind = "internal"
)

// KindOf classifies err. Anything outside the taxonomy is internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case goerrors.Is(err, ErrValidation):
		return KindValidation
	case goerrors.Is(err, ErrNotFound):
		return KindNotFound
	case goerrors.Is(err, ErrConflict):
		return KindConflict
	case goerrors.Is(err, ErrUnreachable):
		return KindUnreachable
	case goerrors.Is(err, ErrStoreFailure):
		return KindStoreFailure
	default:
		return KindInternal
	}
}

// Failure is the error payload carried by a negative acknowledgment.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// MapToFailure hides store and internal details behind a generic message,
// the other kinds keep their text so the UI can show it.
func MapToFailure(err error) Failure {
	kind := KindOf(err)
	switch kind {
	case KindStoreFailure:
		return Failure{Kind: kind, Message: "operation failed, try again later"}
	case KindInternal:
		return Failure{Kind: kind, Message: "unexpected error"}
	default:
		return Failure{Kind: kind, Message: err.Error()}
	}
}

// Store wraps a raw persistence error so that it classifies as ErrStoreFailure
// while keeping the original cause reachable through errors.Is.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreFailure, op, err)
}

// Validation wraps a detail message with ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
