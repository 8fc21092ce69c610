package model

import (
	"errors"
	"fmt"

	"xdao.co/varbin/function"
	"xdao.co/varbin/varbin"
)

type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"
	ErrMalformedInput  ErrorCode = "MALFORMED_INPUT"
	ErrInvalidLength   ErrorCode = "INVALID_LENGTH"
	ErrUnknownFunction ErrorCode = "UNKNOWN_FUNCTION"
	ErrTypeMismatch    ErrorCode = "TYPE_MISMATCH"
	ErrInternal        ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	RuleID  string    `json:"ruleId,omitempty"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// ErrorFrom projects an error from the catalog or varbin onto a CodedError.
// A nil err yields nil.
func ErrorFrom(err error) *CodedError {
	if err == nil {
		return nil
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded
	}
	var e *varbin.Error
	if errors.As(err, &e) {
		code := ErrMalformedInput
		if e.Kind == varbin.KindInvalidLength {
			code = ErrInvalidLength
		}
		return &CodedError{Code: code, RuleID: e.RuleID, Message: e.Message}
	}
	switch {
	case errors.Is(err, function.ErrUnknownFunction):
		return NewError(ErrUnknownFunction, err.Error())
	case errors.Is(err, function.ErrNoOverload):
		return NewError(ErrTypeMismatch, err.Error())
	case errors.Is(err, function.ErrIntegerRange):
		return NewError(ErrInvalidRequest, err.Error())
	default:
		return NewError(ErrInternal, err.Error())
	}
}
