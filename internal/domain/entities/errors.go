package entities

import (
	"errors"
	"fmt"
)

// ErrorKind is the canonical failure taxonomy every layer above the adapters
// reasons about. Provider-specific failures are re-kinded at the adapter
// boundary; classification never depends on message text.

type ErrorKind string

const (
	KindInvalidArgument     ErrorKind = "invalid_argument"
	KindNotFound            ErrorKind = "not_found"
	KindProviderUnavailable ErrorKind = "provider_unavailable"
	KindRateLimited         ErrorKind = "rate_limited"
	KindInternal            ErrorKind = "internal"
)

// PaymentError carries a kind plus the provider it originated from (empty for
// orchestrator-level failures).
type PaymentError struct {
	Kind     ErrorKind
	Provider string
	Message  string
	Err      error
}

func NewPaymentError(kind ErrorKind, provider, message string, err error) *PaymentError {
	return &PaymentError{Kind: kind, Provider: provider, Message: message, Err: err}
}

func (e *PaymentError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Provider != "" {
		msg = fmt.Sprintf("%s: %s", e.Provider, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *PaymentError) Unwrap() error { return e.Err }

// KindOf extracts the canonical kind from err, defaulting to KindInternal for
// anything untyped.
func KindOf(err error) ErrorKind {
	var pe *PaymentError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
