package domain_test

import (
	"testing"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFee(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name      string
		converted decimal.Decimal
		policy    domain.FeePolicy
		want      decimal.Decimal
	}{
		{
			name:      "percentage above minimum",
			converted: d("7080"),
			policy:    domain.FeePolicy{Percentage: d("0.025"), MinimumFee: d("50")},
			want:      d("177"),
		},
		{
			name:      "minimum fee applies",
			converted: d("1000"),
			policy:    domain.FeePolicy{Percentage: d("0.025"), MinimumFee: d("50")},
			want:      d("50"),
		},
		{
			name:      "zero policy",
			converted: d("1000"),
			policy:    domain.FeePolicy{},
			want:      d("0"),
		},
		{
			name:      "zero amount charges minimum",
			converted: d("0"),
			policy:    domain.FeePolicy{Percentage: d("0.01"), MinimumFee: d("5")},
			want:      d("5"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ComputeFee(tt.converted, tt.policy)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestComputeFee_RejectsNegativeInputs(t *testing.T) {
	d := decimal.RequireFromString

	_, err := domain.ComputeFee(d("-1"), domain.FeePolicy{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.ComputeFee(d("100"), domain.FeePolicy{Percentage: d("-0.1")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, apperrors.FieldsOf(err), "feePolicy.percentage")

	_, err = domain.ComputeFee(d("100"), domain.FeePolicy{MinimumFee: d("-5")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, apperrors.FieldsOf(err), "feePolicy.minimumFee")
}
