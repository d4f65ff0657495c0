package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the settlement state of a hawala transfer.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusCancelled TransactionStatus = "CANCELLED"
	StatusWithdrawn TransactionStatus = "WITHDRAWN"
)

// Valid reports whether s is a known status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusWithdrawn:
		return true
	}
	return false
}

// StateMachine holds the legal status edges.
// PENDING -> COMPLETED | CANCELLED, and COMPLETED -> WITHDRAWN when withdrawals are tracked.
type StateMachine struct {
	edges map[TransactionStatus][]TransactionStatus
}

// NewStateMachine builds the graph. With withdrawals disabled COMPLETED is terminal.
func NewStateMachine(trackWithdrawals bool) StateMachine {
	edges := map[TransactionStatus][]TransactionStatus{
		StatusPending: {StatusCompleted, StatusCancelled},
	}
	if trackWithdrawals {
		edges[StatusCompleted] = []TransactionStatus{StatusWithdrawn}
	}
	return StateMachine{edges: edges}
}

// DefaultStateMachine is the graph including WITHDRAWN.
var DefaultStateMachine = NewStateMachine(true)

// CanTransition reports whether to is directly reachable from from.
func (m StateMachine) CanTransition(from, to TransactionStatus) bool {
	for _, next := range m.edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no edge leaves s.
func (m StateMachine) IsTerminal(s TransactionStatus) bool {
	return len(m.edges[s]) == 0
}

// Next lists the statuses reachable from s.
func (m StateMachine) Next(s TransactionStatus) []TransactionStatus {
	out := make([]TransactionStatus, len(m.edges[s]))
	copy(out, m.edges[s])
	return out
}

// Party identifies a sender or receiver. Fields are opaque to the core.
type Party struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Transaction is the immutable snapshot of a committed quote plus its settlement status.
// Only Status, CompletedAt and the LastUpdated audit fields ever change after creation.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // internal UUID
	ReferenceCode string            `json:"referenceCode"` // public tracking code
	AgentID       string            `json:"agentID"`
	RateID        string            `json:"rateID"`
	Status        TransactionStatus `json:"status"`
	FromCurrency  string            `json:"fromCurrency"`
	ToCurrency    string            `json:"toCurrency"`
	FromAmount    decimal.Decimal   `json:"fromAmount"`
	ToAmount      decimal.Decimal   `json:"toAmount"`
	Rate          decimal.Decimal   `json:"rate"`
	RateSide      RateSide          `json:"rateSide"`
	Fee           decimal.Decimal   `json:"fee"`
	NetAmount     decimal.Decimal   `json:"netAmount"`
	Sender        Party             `json:"sender"`
	Receiver      Party             `json:"receiver"`
	Notes         string            `json:"notes"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
	AuditFields
}

// NewTransactionFromQuote freezes quote into a PENDING transaction.
// ToAmount is exactly FromAmount * Rate.
func NewTransactionFromQuote(id, referenceCode string, q Quote, sender, receiver Party, notes, createdBy string, now time.Time) Transaction {
	return Transaction{
		TransactionID: id,
		ReferenceCode: referenceCode,
		AgentID:       q.AgentID,
		RateID:        q.RateID,
		Status:        StatusPending,
		FromCurrency:  q.FromCurrency,
		ToCurrency:    q.ToCurrency,
		FromAmount:    q.Amount,
		ToAmount:      q.Amount.Mul(q.Rate),
		Rate:          q.Rate,
		RateSide:      q.Side,
		Fee:           q.Fee,
		NetAmount:     q.NetAmount,
		Sender:        sender,
		Receiver:      receiver,
		Notes:         notes,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}
}

// ConversionHolds reports whether ToAmount still equals FromAmount * Rate.
func (t Transaction) ConversionHolds() bool {
	return t.ToAmount.Equal(t.FromAmount.Mul(t.Rate))
}

// TransactionRequest is the validated, strongly typed input for creating a transaction.
type TransactionRequest struct {
	AgentID      string
	FromCurrency string
	ToCurrency   string
	FromAmount   decimal.Decimal
	Side         RateSide
	FeePolicy    *FeePolicy // nil selects the configured default
	Sender       Party
	Receiver     Party
	Notes        string
}

// TransitionRequest asks to move a transaction along one edge of the state graph.
// IDOrCode accepts either the internal id or the public reference code.
type TransitionRequest struct {
	IDOrCode     string
	FromExpected TransactionStatus
	ToTarget     TransactionStatus
}

// TransactionFilter narrows agent transaction listings.
type TransactionFilter struct {
	Status    *TransactionStatus
	Limit     int
	NextToken string
}

// TransactionPage is one page of an agent's transactions.
type TransactionPage struct {
	Transactions []Transaction
	NextToken    *string
}
