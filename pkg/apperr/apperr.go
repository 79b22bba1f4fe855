// Package apperr defines the closed error taxonomy shared by the gateway
// components. Every failure that can reach a client maps to exactly one Kind;
// KindExecutionFailed is the fallback for driver errors that fit nothing else.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind enumerates every client-visible failure of the gateway.
type Kind int

const (
	KindUnrecognizedStatement Kind = iota
	KindWrongEndpoint
	KindTableNotGoverned
	KindForbidden
	KindCredentialRequired
	KindInvalidCredential
	KindUserNotFound
	KindIncorrectOtp
	KindDuplicateEntry
	KindTableNotFound
	KindExecutionFailed
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnrecognizedStatement:
		return "unrecognized_statement"
	case KindWrongEndpoint:
		return "wrong_endpoint"
	case KindTableNotGoverned:
		return "table_not_governed"
	case KindForbidden:
		return "forbidden"
	case KindCredentialRequired:
		return "credential_required"
	case KindInvalidCredential:
		return "invalid_credential"
	case KindUserNotFound:
		return "user_not_found"
	case KindIncorrectOtp:
		return "incorrect_otp"
	case KindDuplicateEntry:
		return "duplicate_entry"
	case KindTableNotFound:
		return "table_not_found"
	case KindExecutionFailed:
		return "execution_failed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Status returns the HTTP status code the kind maps to.
func (k Kind) Status() int {
	switch k {
	case KindWrongEndpoint, KindCredentialRequired, KindIncorrectOtp, KindDuplicateEntry:
		return http.StatusBadRequest
	case KindInvalidCredential:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnrecognizedStatement, KindTableNotGoverned, KindUserNotFound, KindTableNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Error is a classified gateway failure. Detail is the client-facing message;
// Err carries the underlying cause for logs only and is never serialized.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with a client-facing detail message.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap creates a classified error that keeps the underlying cause.
func Wrap(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// KindOf reports the Kind of err. Unclassified errors are
// KindExecutionFailed so that the mapping to the taxonomy stays total.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindExecutionFailed
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Body is the JSON error body returned by every endpoint.
type Body struct {
	CodeStatus int    `json:"codestatus"`
	Detail     string `json:"detail"`
}

// BodyOf builds the client-facing body for err. Unclassified errors are
// reported as a generic execution failure; the cause stays server-side.
func BodyOf(err error) Body {
	var e *Error
	if errors.As(err, &e) {
		return Body{CodeStatus: e.Kind.Status(), Detail: e.Detail}
	}
	return Body{CodeStatus: http.StatusInternalServerError, Detail: "Something went wrong"}
}
