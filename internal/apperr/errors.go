// Package apperr defines the error taxonomy shared by the service and handler
// layers: validation failures, classifier outages and storage outages are
// distinguishable so callers can react differently (fix input, retry, alert).
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindClassifier Kind = "classifier_unavailable"
	KindStorage    Kind = "storage_unavailable"
	KindUnknown    Kind = "unknown"
)

// Error carries a kind alongside a human-readable message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a missing or malformed request field.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// ClassifierUnavailable wraps a failed or malformed model call. Crisis decisions
// are never guessed when the classifier is down, so this always surfaces.
func ClassifierUnavailable(msg string, err error) error {
	return &Error{Kind: KindClassifier, Msg: msg, Err: err}
}

// StorageUnavailable wraps a failed append or query against the record store.
func StorageUnavailable(msg string, err error) error {
	return &Error{Kind: KindStorage, Msg: msg, Err: err}
}

// KindOf extracts the kind from err, walking the wrap chain.
// Errors without a taxonomy kind report KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
