// Package installments computes the installment plans offered for an amount.
//
// Amounts are integer minor units (centavos). All interest math runs on
// decimals so repeated division never accumulates float drift.
package installments

import (
	"os"
	"strconv"

	"pagamentos_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	defaultMaxInstallments   = 12
	defaultInterestFreeLimit = 3
	defaultMonthlyInterest   = "0.0199"
)

// Policy drives how options are produced: how many installments are offered,
// up to which count no interest applies, and the monthly rate compounded per
// installment above that cutoff.
type Policy struct {
	MaxInstallments   int
	InterestFreeLimit int
	MonthlyInterest   decimal.Decimal
}

func DefaultPolicy() Policy {
	rate, _ := decimal.NewFromString(defaultMonthlyInterest)
	return Policy{
		MaxInstallments:   defaultMaxInstallments,
		InterestFreeLimit: defaultInterestFreeLimit,
		MonthlyInterest:   rate,
	}
}

// PolicyFromEnv reads the policy from environment variables, falling back to
// the defaults on missing or malformed values.
//
// Supported env vars:
//   - INSTALLMENTS_MAX (default: 12)
//   - INSTALLMENTS_INTEREST_FREE (default: 3)
//   - INSTALLMENTS_MONTHLY_INTEREST (default: 0.0199)
func PolicyFromEnv() Policy {
	p := DefaultPolicy()
	if v, err := strconv.Atoi(os.Getenv("INSTALLMENTS_MAX")); err == nil && v > 0 {
		p.MaxInstallments = v
	}
	if v, err := strconv.Atoi(os.Getenv("INSTALLMENTS_INTEREST_FREE")); err == nil && v > 0 {
		p.InterestFreeLimit = v
	}
	if v, err := decimal.NewFromString(os.Getenv("INSTALLMENTS_MONTHLY_INTEREST")); err == nil && !v.IsNegative() {
		p.MonthlyInterest = v
	}
	return p
}

type Calculator struct {
	policy Policy
}

func NewCalculator(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

// ComputeOptions returns the plans for amount, ascending by count. Counts at
// or below the interest-free cutoff keep the total equal to amount; above it
// the monthly rate compounds once per installment. The per-installment value
// is the ceiling of total/count, so the last installment absorbs the rounding
// remainder.
func (c *Calculator) ComputeOptions(amount int64) ([]entities.InstallmentOption, error) {
	if amount <= 0 {
		return nil, entities.NewPaymentError(entities.KindInvalidArgument, "", "amount must be greater than zero", nil)
	}

	one := decimal.NewFromInt(1)
	base := decimal.NewFromInt(amount)

	options := make([]entities.InstallmentOption, 0, c.policy.MaxInstallments)
	for count := 1; count <= c.policy.MaxInstallments; count++ {
		interest := count > c.policy.InterestFreeLimit && c.policy.MonthlyInterest.IsPositive()

		total := base
		if interest {
			factor := one.Add(c.policy.MonthlyInterest).Pow(decimal.NewFromInt(int64(count)))
			total = base.Mul(factor).Round(0)
		}

		per := total.Div(decimal.NewFromInt(int64(count))).Ceil()

		options = append(options, entities.InstallmentOption{
			Count:                count,
			PerInstallmentAmount: per.IntPart(),
			TotalAmount:          total.IntPart(),
			InterestApplied:      interest,
		})
	}
	return options, nil
}
