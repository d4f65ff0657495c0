package domain

import (
	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FeePolicy describes how an agent charges for a conversion.
// Percentage is a fraction (0.025 == 2.5%) of the converted amount.
type FeePolicy struct {
	Percentage decimal.Decimal `json:"percentage"`
	MinimumFee decimal.Decimal `json:"minimumFee"`
}

// Validate rejects negative policy components.
func (p FeePolicy) Validate() error {
	fields := map[string]string{}
	if p.Percentage.IsNegative() {
		fields["feePolicy.percentage"] = "must not be negative"
	}
	if p.MinimumFee.IsNegative() {
		fields["feePolicy.minimumFee"] = "must not be negative"
	}
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}

// ComputeFee returns max(convertedAmount * percentage, minimumFee).
// It performs no I/O and fails only on negative inputs.
func ComputeFee(convertedAmount decimal.Decimal, policy FeePolicy) (decimal.Decimal, error) {
	if convertedAmount.IsNegative() {
		return decimal.Zero, apperrors.NewValidationError("convertedAmount", "must not be negative")
	}
	if err := policy.Validate(); err != nil {
		return decimal.Zero, err
	}
	return decimal.Max(convertedAmount.Mul(policy.Percentage), policy.MinimumFee), nil
}
