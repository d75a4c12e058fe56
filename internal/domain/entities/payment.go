package entities

import (
	"encoding/json"
	"time"
)

// PaymentMethod identifies the rail a payment runs on.

type PaymentMethod string

const (
	MethodPix        PaymentMethod = "pix"
	MethodCreditCard PaymentMethod = "credit_card"
	MethodDebitCard  PaymentMethod = "debit_card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodPix, MethodCreditCard, MethodDebitCard:
		return true
	}
	return false
}

// CanonicalStatus is the unified payment-state vocabulary used outside any
// single provider's native terms.
//
// approved, declined and expired are terminal: once a payment reaches one of
// them no later poll may move it to a different status. error reflects an
// observation failure, not a payment outcome, and stays re-pollable.

type CanonicalStatus string

const (
	StatusPending    CanonicalStatus = "pending"
	StatusProcessing CanonicalStatus = "processing"
	StatusApproved   CanonicalStatus = "approved"
	StatusDeclined   CanonicalStatus = "declined"
	StatusExpired    CanonicalStatus = "expired"
	StatusNotFound   CanonicalStatus = "not_found"
	StatusError      CanonicalStatus = "error"
)

func (s CanonicalStatus) Terminal() bool {
	switch s {
	case StatusApproved, StatusDeclined, StatusExpired:
		return true
	}
	return false
}

// PaymentRequest is the canonical creation request handed to the orchestrator.
//
// Amount is an integer minor-unit count (centavos). CardNumber is only set for
// card rails and must never leave the validator/adapter boundary unmasked.
type PaymentRequest struct {
	Amount       int64             `json:"amount"`
	Description  string            `json:"description"`
	CustomerID   string            `json:"customer_id"`
	Method       PaymentMethod     `json:"method"`
	CardNumber   string            `json:"-"`
	Installments int               `json:"installments,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// PaymentRecord is the orchestrator-owned view of a created payment.
//
// RawProviderPayload keeps the provider response body (JSON) for
// traceability/audit; PIX QR data travels inside it opaquely.
type PaymentRecord struct {
	ID          string          `json:"id"`
	Method      PaymentMethod   `json:"method"`
	Status      CanonicalStatus `json:"status"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description,omitempty"`
	CustomerID  string          `json:"customer_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	RawProviderPayload json.RawMessage `json:"raw_provider_payload,omitempty"`
}

// ProviderStatus is the raw status observation an adapter returns from
// FetchStatus, before normalization.
type ProviderStatus struct {
	PaymentID string
	Native    string
	Amount    int64
	UpdatedAt time.Time
	Payload   json.RawMessage
}

// StatusResult is what a status poll returns to the caller.
type StatusResult struct {
	ID        string          `json:"id"`
	Method    PaymentMethod   `json:"method"`
	Status    CanonicalStatus `json:"status"`
	Amount    int64           `json:"amount,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}
