package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure so callers can tell a user decision from an infrastructure problem.
type Kind string

const (
	KindInputValidation Kind = "input_validation"
	KindEnvironment     Kind = "environment"
	KindUserDecision    Kind = "user_decision"
	KindSigning         Kind = "signing"
)

// Error is the single error type surfaced by the signer. Two errors match with errors.Is
// when their codes are equal, so callers compare against the sentinels below.
type Error struct {
	Kind    Kind
	Code    string
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

// Is matches on the code only.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Code == e.Code
}

var (
	ErrEmptyBatch         = &Error{Kind: KindInputValidation, Code: "EMPTY_BATCH", Message: "There must be at least one transaction"}
	ErrMixedChain         = &Error{Kind: KindInputValidation, Code: "MIXED_CHAIN", Message: "All transactions must have the same chainId"}
	ErrInvalidIntent      = &Error{Kind: KindInputValidation, Code: "INVALID_TRANSACTION", Message: "Invalid transaction"}
	ErrMalformedPayload   = &Error{Kind: KindInputValidation, Code: "MALFORMED_PAYLOAD", Message: "Malformed transaction data"}
	ErrInvalidAmount      = &Error{Kind: KindInputValidation, Code: "INVALID_AMOUNT", Message: "Invalid amount"}
	ErrInvalidGasLimit    = &Error{Kind: KindInputValidation, Code: "INVALID_GAS_LIMIT", Message: "Gas limit is lower than the minimum required"}
	ErrUnknownChain       = &Error{Kind: KindEnvironment, Code: "UNKNOWN_CHAIN", Message: "Cannot identify the network"}
	ErrNetworkUnavailable = &Error{Kind: KindEnvironment, Code: "NETWORK_UNAVAILABLE", Message: "Cannot retrieve the network configuration from the API"}
	ErrTokenMetadata      = &Error{Kind: KindEnvironment, Code: "TOKEN_METADATA_UNAVAILABLE", Message: "Cannot retrieve token details from the API"}
	ErrUserRejected       = &Error{Kind: KindUserDecision, Code: "USER_REJECTED", Message: "Request rejected by the user"}
	ErrKeyUnavailable     = &Error{Kind: KindSigning, Code: "KEY_UNAVAILABLE", Message: "Cannot retrieve the private key"}
)

// New returns a copy of the sentinel carrying a more specific message.
func New(sentinel *Error, message string) *Error {
	return &Error{
		Kind:    sentinel.Kind,
		Code:    sentinel.Code,
		Message: message,
	}
}

// Newf is New with formatting.
func Newf(sentinel *Error, format string, args ...any) *Error {
	return New(sentinel, fmt.Sprintf(format, args...))
}

// Wrap attaches cause to a copy of the sentinel.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{
		Kind:    sentinel.Kind,
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Err:     cause,
	}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ""
}
