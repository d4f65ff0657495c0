package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is a row of the rates table, unique on (agent_id, from_currency, to_currency).
type Rate struct {
	RateID       string          `db:"rate_id"`
	AgentID      string          `db:"agent_id"`
	FromCurrency string          `db:"from_currency"`
	ToCurrency   string          `db:"to_currency"`
	BuyRate      decimal.Decimal `db:"buy_rate"`
	SellRate     decimal.Decimal `db:"sell_rate"`
	IsActive     bool            `db:"is_active"`
	ValidUntil   *time.Time      `db:"valid_until"` // Nullable
	AuditFields
}
