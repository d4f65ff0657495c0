package dto

import (
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertRateRequest creates or replaces an agent's rate for one currency pair.
type UpsertRateRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,alpha"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,alpha"`
	BuyRate      decimal.Decimal `json:"buyRate" binding:"required"`
	SellRate     decimal.Decimal `json:"sellRate" binding:"required"`
	ValidUntil   *time.Time      `json:"validUntil,omitempty"`
}

// ToDomain binds the request to the agent taken from the path.
func (r UpsertRateRequest) ToDomain(agentID string) domain.RateInput {
	return domain.RateInput{
		AgentID:      agentID,
		FromCurrency: r.FromCurrency,
		ToCurrency:   r.ToCurrency,
		BuyRate:      r.BuyRate,
		SellRate:     r.SellRate,
		ValidUntil:   r.ValidUntil,
	}
}

// UpdateRateRequest is a partial update; omitted fields keep their value.
type UpdateRateRequest struct {
	BuyRate         *decimal.Decimal `json:"buyRate,omitempty"`
	SellRate        *decimal.Decimal `json:"sellRate,omitempty"`
	IsActive        *bool            `json:"isActive,omitempty"`
	ValidUntil      *time.Time       `json:"validUntil,omitempty"`
	ClearValidUntil bool             `json:"clearValidUntil,omitempty"`
}

func (r UpdateRateRequest) ToDomain() domain.RatePatch {
	return domain.RatePatch{
		BuyRate:         r.BuyRate,
		SellRate:        r.SellRate,
		IsActive:        r.IsActive,
		ValidUntil:      r.ValidUntil,
		ClearValidUntil: r.ClearValidUntil,
	}
}

// SetRateActiveRequest toggles a rate without deleting it.
type SetRateActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// RateResponse defines the structure for API responses containing rate details.
type RateResponse struct {
	RateID        string          `json:"rateID"`
	AgentID       string          `json:"agentID"`
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	BuyRate       decimal.Decimal `json:"buyRate"`
	SellRate      decimal.Decimal `json:"sellRate"`
	Spread        decimal.Decimal `json:"spread"`
	IsActive      bool            `json:"isActive"`
	ValidUntil    *time.Time      `json:"validUntil,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToRateResponse converts a domain.Rate to RateResponse DTO
func ToRateResponse(rate *domain.Rate) RateResponse {
	return RateResponse{
		RateID:        rate.RateID,
		AgentID:       rate.AgentID,
		FromCurrency:  rate.FromCurrency,
		ToCurrency:    rate.ToCurrency,
		BuyRate:       rate.BuyRate,
		SellRate:      rate.SellRate,
		Spread:        rate.Spread(),
		IsActive:      rate.IsActive,
		ValidUntil:    rate.ValidUntil,
		CreatedAt:     rate.CreatedAt,
		CreatedBy:     rate.CreatedBy,
		LastUpdatedAt: rate.LastUpdatedAt,
		LastUpdatedBy: rate.LastUpdatedBy,
	}
}

// PublicRateResponse is the rate board entry shown to unauthenticated callers.
type PublicRateResponse struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	BuyRate      decimal.Decimal `json:"buyRate"`
	SellRate     decimal.Decimal `json:"sellRate"`
	ValidUntil   *time.Time      `json:"validUntil,omitempty"`
}

// ToListPublicRateResponse converts a slice of rates to the public rate board.
func ToListPublicRateResponse(rates []domain.Rate) []PublicRateResponse {
	responses := make([]PublicRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = PublicRateResponse{
			FromCurrency: rate.FromCurrency,
			ToCurrency:   rate.ToCurrency,
			BuyRate:      rate.BuyRate,
			SellRate:     rate.SellRate,
			ValidUntil:   rate.ValidUntil,
		}
	}
	return responses
}
