// Package apperr defines the error taxonomy every service returns.
// Handlers never invent status codes; the serializer maps kinds.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindUnauthenticated: no credential at all, or the subject does not exist.
	KindUnauthenticated
	// KindInvalidToken: malformed token or bad signature.
	KindInvalidToken
	// KindTokenExpired: signature checks out but the expiry has passed.
	KindTokenExpired
	// KindForbidden: authenticated but lacking the admin capability.
	KindForbidden
	KindNotFound
	KindInvalidInput
	// KindPersistence: a storage failure that already triggered a rollback.
	KindPersistence
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Message() string { return e.msg }

// KindOf walks the chain and returns the kind of the outermost *Error,
// or KindUnknown when err carries no taxonomy.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
