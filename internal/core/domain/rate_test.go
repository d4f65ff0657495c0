package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRate_IsUsableAt(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-time.Minute)

	assert.True(t, domain.Rate{IsActive: true}.IsUsableAt(now))
	assert.True(t, domain.Rate{IsActive: true, ValidUntil: &future}.IsUsableAt(now))
	assert.False(t, domain.Rate{IsActive: true, ValidUntil: &past}.IsUsableAt(now))
	assert.False(t, domain.Rate{IsActive: true, ValidUntil: &now}.IsUsableAt(now))
	assert.False(t, domain.Rate{IsActive: false, ValidUntil: &future}.IsUsableAt(now))
}

func TestRate_ValueForSide(t *testing.T) {
	r := domain.Rate{BuyRate: decimal.RequireFromString("69.9"), SellRate: decimal.RequireFromString("70.8")}
	assert.True(t, r.ValueFor(domain.RateSideSell).Equal(r.SellRate))
	assert.True(t, r.ValueFor(domain.RateSideBuy).Equal(r.BuyRate))
	assert.True(t, r.Spread().Equal(decimal.RequireFromString("0.9")))
}

func TestRatePatch_Apply(t *testing.T) {
	until := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	base := domain.Rate{
		BuyRate:    decimal.NewFromInt(1),
		SellRate:   decimal.NewFromInt(2),
		IsActive:   true,
		ValidUntil: &until,
	}
	sell := decimal.NewFromInt(3)
	inactive := false

	patched := domain.RatePatch{SellRate: &sell, IsActive: &inactive, ClearValidUntil: true}.Apply(base)

	assert.True(t, patched.BuyRate.Equal(decimal.NewFromInt(1)))
	assert.True(t, patched.SellRate.Equal(sell))
	assert.False(t, patched.IsActive)
	assert.Nil(t, patched.ValidUntil)
	assert.NotNil(t, base.ValidUntil, "original must be untouched")
	assert.True(t, domain.RatePatch{}.IsEmpty())
}

func TestMaskName(t *testing.T) {
	assert.Equal(t, "A**** K*****", domain.MaskName("Ahmad Karimi"))
	assert.Equal(t, "", domain.MaskName("   "))
	assert.Equal(t, "Z", domain.MaskName("Z"))
}

func TestActor_CanActFor(t *testing.T) {
	assert.True(t, domain.Actor{AgentID: "a1"}.CanActFor("a1"))
	assert.False(t, domain.Actor{AgentID: "a1"}.CanActFor("a2"))
	assert.False(t, domain.Actor{}.CanActFor(""))
	assert.True(t, domain.Actor{IsAdmin: true}.CanActFor("a2"))
}
