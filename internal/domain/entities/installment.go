package entities

// InstallmentOption is one entry of an installment plan for a given amount.
//
// Invariant: PerInstallmentAmount * Count covers TotalAmount with a rounding
// remainder smaller than Count; the last installment absorbs it. The ceiling
// division is deliberate (10000 split in 3 shows 3334 per installment, not
// 3333): the displayed per-amount must never undershoot what is charged.
type InstallmentOption struct {
	Count                int   `json:"count"`
	PerInstallmentAmount int64 `json:"per_installment_amount"`
	TotalAmount          int64 `json:"total_amount"`
	InterestApplied      bool  `json:"interest_applied"`
}
