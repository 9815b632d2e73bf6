package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Kind classifies a service failure for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is the only error type services return. Message is safe to show to
// callers; Err carries the cause for logs and is never rendered.
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

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrBarcodeNotFound = &Error{Kind: KindNotFound, Message: "Barcode not found"}
	ErrNotOwner        = &Error{Kind: KindForbidden, Message: "This barcode does not belong to this user"}
)

// classify returns err unchanged if it is already a *Error, otherwise wraps it
// once as KindInternal with the operation's generic message.
func classify(err error, message string) error {
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the classification of err; unclassified errors are internal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// logFailure records err at a level matching its kind. The cause is logged here
// because it never leaves the service.
func logFailure(log *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("kind", KindOf(err).String()), zap.Error(err))
	switch KindOf(err) {
	case KindNotFound:
		log.Debug(msg, fields...)
	case KindForbidden:
		log.Warn(msg, fields...)
	default:
		log.Error(msg, fields...)
	}
}
