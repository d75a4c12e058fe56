package request

import (
	"pagamentos_xpto/internal/domain/entities"
)

// CreatePixPaymentRequest is the body accepted by POST /v1/payments/pix.
type CreatePixPaymentRequest struct {
	Amount      int64             `json:"amount" binding:"required"`
	Description string            `json:"description"`
	CustomerID  string            `json:"customer_id" binding:"required"`
	Metadata    map[string]string `json:"metadata"`
}

func (r CreatePixPaymentRequest) ToEntity() entities.PaymentRequest {
	return entities.PaymentRequest{
		Amount:      r.Amount,
		Description: r.Description,
		CustomerID:  r.CustomerID,
		Method:      entities.MethodPix,
		Metadata:    r.Metadata,
	}
}

// CreateCardPaymentRequest is the body accepted by POST /v1/payments/card.
//
// CardNumber never leaves this struct unmasked: the entity keeps it out of
// JSON serialization and every log line masks it.
type CreateCardPaymentRequest struct {
	Amount       int64             `json:"amount" binding:"required"`
	Description  string            `json:"description"`
	CustomerID   string            `json:"customer_id" binding:"required"`
	Method       string            `json:"method"`
	CardNumber   string            `json:"card_number" binding:"required"`
	Installments int               `json:"installments"`
	Metadata     map[string]string `json:"metadata"`
}

func (r CreateCardPaymentRequest) ToEntity() entities.PaymentRequest {
	return entities.PaymentRequest{
		Amount:       r.Amount,
		Description:  r.Description,
		CustomerID:   r.CustomerID,
		Method:       entities.PaymentMethod(r.Method),
		CardNumber:   r.CardNumber,
		Installments: r.Installments,
		Metadata:     r.Metadata,
	}
}

// ValidateCardRequest is the body accepted by POST /v1/cards/validate.
type ValidateCardRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
}
