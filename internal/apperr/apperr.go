// Package apperr defines the typed failures the service layer reports to
// callers. Every failure is terminal for the current operation; nothing is
// retried internally.
package apperr

import "errors"

// Kind classifies a failure so the transport layer can pick a status code
// without parsing messages.
type Kind int

const (
	// KindNotFound: a referenced entity id does not resolve.
	KindNotFound Kind = iota
	// KindConflict: uniqueness violation on create or rename.
	KindConflict
	// KindRuleViolation: a named business invariant failed.
	KindRuleViolation
	// KindForbidden: the actor lacks authority over the target entity.
	KindForbidden
	// KindBadRequest: malformed input (inverted date range, blank required string).
	KindBadRequest
	// KindUnauthorized: login-specific credential failure.
	KindUnauthorized
)

// Error is a typed domain failure carrying a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error      { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error      { return &Error{Kind: KindConflict, Message: msg} }
func RuleViolation(msg string) *Error { return &Error{Kind: KindRuleViolation, Message: msg} }
func Forbidden(msg string) *Error     { return &Error{Kind: KindForbidden, Message: msg} }
func BadRequest(msg string) *Error    { return &Error{Kind: KindBadRequest, Message: msg} }
func Unauthorized(msg string) *Error  { return &Error{Kind: KindUnauthorized, Message: msg} }

// KindOf extracts the Kind from err, reporting false when err is not a
// domain failure (infrastructure errors stay 500s upstream).
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is a domain failure of the given kind.
func IsKind(err error, k Kind) bool {
	kind, ok := KindOf(err)
	return ok && kind == k
}
