package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Sender and receiver are
// flattened into prefixed columns.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"` // Primary Key (UUID)
	ReferenceCode   string          `db:"reference_code"` // Unique
	AgentID         string          `db:"agent_id"`       // FK -> agents.agent_id
	RateID          string          `db:"rate_id"`
	Status          string          `db:"status"`
	FromCurrency    string          `db:"from_currency"`
	ToCurrency      string          `db:"to_currency"`
	FromAmount      decimal.Decimal `db:"from_amount"`
	ToAmount        decimal.Decimal `db:"to_amount"`
	Rate            decimal.Decimal `db:"rate"`
	RateSide        string          `db:"rate_side"`
	Fee             decimal.Decimal `db:"fee"`
	NetAmount       decimal.Decimal `db:"net_amount"`
	SenderName      string          `db:"sender_name"`
	SenderPhone     string          `db:"sender_phone"`
	SenderCity      string          `db:"sender_city"`
	SenderCountry   string          `db:"sender_country"`
	ReceiverName    string          `db:"receiver_name"`
	ReceiverPhone   string          `db:"receiver_phone"`
	ReceiverCity    string          `db:"receiver_city"`
	ReceiverCountry string          `db:"receiver_country"`
	Notes           string          `db:"notes"`
	CompletedAt     *time.Time      `db:"completed_at"` // Nullable, set once on COMPLETED
	AuditFields
}
