package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest asks for the conversion of Amount units of FromCurrency.
type QuoteRequest struct {
	AgentID      string
	FromCurrency string
	ToCurrency   string
	Amount       decimal.Decimal
	Side         RateSide
	FeePolicy    FeePolicy
}

// Quote is the computed conversion prior to committing a transaction.
type Quote struct {
	RateID          string          `json:"rateID"`
	AgentID         string          `json:"agentID"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Side            RateSide        `json:"side"`
	Amount          decimal.Decimal `json:"amount"`
	Rate            decimal.Decimal `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Fee             decimal.Decimal `json:"fee"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	QuotedAt        time.Time       `json:"quotedAt"`
}
