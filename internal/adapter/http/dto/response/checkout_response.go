package response

import "pagamentos_xpto/internal/domain/entities"

type InstallmentOptionResponse struct {
	Count                int   `json:"count"`
	PerInstallmentAmount int64 `json:"per_installment_amount"`
	TotalAmount          int64 `json:"total_amount"`
	InterestApplied      bool  `json:"interest_applied"`
}

type InstallmentOptionsResponse struct {
	Amount  int64                       `json:"amount"`
	Options []InstallmentOptionResponse `json:"options"`
}

func FromInstallmentOptions(amount int64, opts []entities.InstallmentOption) InstallmentOptionsResponse {
	out := make([]InstallmentOptionResponse, 0, len(opts))
	for _, opt := range opts {
		out = append(out, InstallmentOptionResponse{
			Count:                opt.Count,
			PerInstallmentAmount: opt.PerInstallmentAmount,
			TotalAmount:          opt.TotalAmount,
			InterestApplied:      opt.InterestApplied,
		})
	}
	return InstallmentOptionsResponse{Amount: amount, Options: out}
}

// CardValidationResponse only ever carries the masked rendering of the card
// number that was validated.
type CardValidationResponse struct {
	Valid        bool   `json:"valid"`
	MaskedNumber string `json:"masked_number"`
}
