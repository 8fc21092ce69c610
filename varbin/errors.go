package varbin

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// Every error returned by this package is a caller-input error: it is
// deterministic given the input and is never retried internally.
// Callers should branch on Kind/RuleID rather than matching error strings.
type Kind string

const (
	// KindMalformedInput reports decode input that violates the alphabet,
	// padding, or length-parity rules of its text encoding.
	KindMalformedInput Kind = "MalformedInput"
	// KindInvalidLength reports binary input to a fixed-width codec whose
	// length is not the required one.
	KindInvalidLength Kind = "InvalidLength"
)

// Error is the library's structured error type.
//
// RuleID names the violated constraint (e.g. VARBIN-HEX-001). For
// KindInvalidLength, Expected and Actual carry the byte counts.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind     Kind
	RuleID   string
	Message  string
	Expected int
	Actual   int
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func malformed(ruleID, msg string, cause error) error {
	return &Error{Kind: KindMalformedInput, RuleID: ruleID, Message: msg, Cause: cause}
}

func invalidLength(ruleID string, expected, actual int) error {
	return &Error{
		Kind:     KindInvalidLength,
		RuleID:   ruleID,
		Message:  fmt.Sprintf("expected %d-byte input, but got instead: %d", expected, actual),
		Expected: expected,
		Actual:   actual,
	}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}

// Rule identifiers. These remain stable across versions.
const (
	RuleBase64Std      = "VARBIN-B64-001"
	RuleBase64URL      = "VARBIN-B64-002"
	RuleHexOddLength   = "VARBIN-HEX-001"
	RuleHexInvalidChar = "VARBIN-HEX-002"
	RuleBigEndian64    = "VARBIN-INT-001"
	RuleBigEndian32    = "VARBIN-INT-002"
	RuleCIDSyntax      = "VARBIN-CID-001"
	RuleCIDHash        = "VARBIN-CID-002"
)
