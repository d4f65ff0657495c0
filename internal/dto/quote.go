package dto

import (
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FeePolicy is the optional per-request fee override.
type FeePolicy struct {
	Percentage decimal.Decimal `json:"percentage"`
	MinimumFee decimal.Decimal `json:"minimumFee"`
}

func (f *FeePolicy) toDomain() *domain.FeePolicy {
	if f == nil {
		return nil
	}
	return &domain.FeePolicy{Percentage: f.Percentage, MinimumFee: f.MinimumFee}
}

// QuoteRequest asks for a price without committing anything.
type QuoteRequest struct {
	AgentID      string          `json:"agentID" binding:"required"`
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,alpha"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,alpha"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Side         string          `json:"side" binding:"required,oneof=BUY SELL"`
	FeePolicy    *FeePolicy      `json:"feePolicy,omitempty"`
}

// ToDomain uses defaultFee when the request carries no fee policy.
func (r QuoteRequest) ToDomain(defaultFee domain.FeePolicy) domain.QuoteRequest {
	fee := defaultFee
	if p := r.FeePolicy.toDomain(); p != nil {
		fee = *p
	}
	return domain.QuoteRequest{
		AgentID:      r.AgentID,
		FromCurrency: r.FromCurrency,
		ToCurrency:   r.ToCurrency,
		Amount:       r.Amount,
		Side:         domain.RateSide(r.Side),
		FeePolicy:    fee,
	}
}

// QuoteResponse is the priced conversion.
type QuoteResponse struct {
	RateID          string          `json:"rateID"`
	AgentID         string          `json:"agentID"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Side            string          `json:"side"`
	Amount          decimal.Decimal `json:"amount"`
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Fee             decimal.Decimal `json:"fee"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	QuotedAt        time.Time       `json:"quotedAt"`
}

func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		RateID:          q.RateID,
		AgentID:         q.AgentID,
		FromCurrency:    q.FromCurrency,
		ToCurrency:      q.ToCurrency,
		Side:            string(q.Side),
		Amount:          q.Amount,
		Rate:            q.Rate,
		ConvertedAmount: q.ConvertedAmount,
		Fee:             q.Fee,
		NetAmount:       q.NetAmount,
		QuotedAt:        q.QuotedAt,
	}
}
