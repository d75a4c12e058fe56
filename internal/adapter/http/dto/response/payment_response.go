package response

import (
	"encoding/json"
	"time"

	"pagamentos_xpto/internal/domain/entities"
)

type PaymentResponse struct {
	ID          string    `json:"id"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
}

func FromPaymentRecord(rec entities.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:              rec.ID,
		Method:          string(rec.Method),
		Status:          string(rec.Status),
		Amount:          rec.Amount,
		Description:     rec.Description,
		CreatedAt:       rec.CreatedAt,
		ProviderPayload: rec.RawProviderPayload,
	}
}

type PaymentStatusResponse struct {
	ID        string    `json:"id"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	Amount    int64     `json:"amount,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromStatusResult(res entities.StatusResult) PaymentStatusResponse {
	return PaymentStatusResponse{
		ID:        res.ID,
		Method:    string(res.Method),
		Status:    string(res.Status),
		Amount:    res.Amount,
		UpdatedAt: res.UpdatedAt,
	}
}
