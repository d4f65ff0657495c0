package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSide selects which of the agent's published rates a conversion uses.
// SELL is the rate at which the agent sells the target currency to a sender,
// BUY the rate at which the agent buys it back.
type RateSide string

const (
	RateSideBuy  RateSide = "BUY"
	RateSideSell RateSide = "SELL"
)

// Valid reports whether s is a known side.
func (s RateSide) Valid() bool {
	return s == RateSideBuy || s == RateSideSell
}

// Rate is an agent's current buy/sell quotation for one currency pair.
// (AgentID, FromCurrency, ToCurrency) is unique, so at most one row and therefore
// at most one active rate exists per agent and pair.
type Rate struct {
	RateID       string          `json:"rateID"`
	AgentID      string          `json:"agentID"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	BuyRate      decimal.Decimal `json:"buyRate"`
	SellRate     decimal.Decimal `json:"sellRate"`
	IsActive     bool            `json:"isActive"`
	ValidUntil   *time.Time      `json:"validUntil,omitempty"`
	AuditFields
}

// Pair returns the currency pair the rate quotes.
func (r Rate) Pair() CurrencyPair {
	return CurrencyPair{FromCurrency: r.FromCurrency, ToCurrency: r.ToCurrency}
}

// ValueFor returns the rate applicable to side.
func (r Rate) ValueFor(side RateSide) decimal.Decimal {
	if side == RateSideBuy {
		return r.BuyRate
	}
	return r.SellRate
}

// Spread is the difference between the sell and buy rate.
func (r Rate) Spread() decimal.Decimal {
	return r.SellRate.Sub(r.BuyRate)
}

// IsExpiredAt reports whether validUntil lies at or before now.
func (r Rate) IsExpiredAt(now time.Time) bool {
	return r.ValidUntil != nil && !r.ValidUntil.After(now)
}

// IsUsableAt reports whether the rate may be quoted at now.
func (r Rate) IsUsableAt(now time.Time) bool {
	return r.IsActive && !r.IsExpiredAt(now)
}

// RatePatch carries a partial rate update. Nil fields are left untouched.
type RatePatch struct {
	BuyRate         *decimal.Decimal
	SellRate        *decimal.Decimal
	IsActive        *bool
	ValidUntil      *time.Time
	ClearValidUntil bool
}

// IsEmpty reports whether the patch changes nothing.
func (p RatePatch) IsEmpty() bool {
	return p.BuyRate == nil && p.SellRate == nil && p.IsActive == nil && p.ValidUntil == nil && !p.ClearValidUntil
}

// Apply returns a copy of r with the patch applied.
func (p RatePatch) Apply(r Rate) Rate {
	if p.BuyRate != nil {
		r.BuyRate = *p.BuyRate
	}
	if p.SellRate != nil {
		r.SellRate = *p.SellRate
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
	if p.ClearValidUntil {
		r.ValidUntil = nil
	} else if p.ValidUntil != nil {
		v := *p.ValidUntil
		r.ValidUntil = &v
	}
	return r
}

// RateInput is the validated payload for creating or replacing a rate.
type RateInput struct {
	AgentID      string
	FromCurrency string
	ToCurrency   string
	BuyRate      decimal.Decimal
	SellRate     decimal.Decimal
	ValidUntil   *time.Time
}
