package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStateMachine_CanTransition(t *testing.T) {
	sm := domain.DefaultStateMachine

	tests := []struct {
		name string
		from domain.TransactionStatus
		to   domain.TransactionStatus
		want bool
	}{
		{"pending to completed", domain.StatusPending, domain.StatusCompleted, true},
		{"pending to cancelled", domain.StatusPending, domain.StatusCancelled, true},
		{"completed to withdrawn", domain.StatusCompleted, domain.StatusWithdrawn, true},
		{"completed back to pending", domain.StatusCompleted, domain.StatusPending, false},
		{"completed to cancelled", domain.StatusCompleted, domain.StatusCancelled, false},
		{"pending to withdrawn skips completed", domain.StatusPending, domain.StatusWithdrawn, false},
		{"pending to pending", domain.StatusPending, domain.StatusPending, false},
		{"cancelled to pending", domain.StatusCancelled, domain.StatusPending, false},
		{"cancelled to completed", domain.StatusCancelled, domain.StatusCompleted, false},
		{"withdrawn to completed", domain.StatusWithdrawn, domain.StatusCompleted, false},
		{"unknown source", domain.TransactionStatus("LOST"), domain.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sm.CanTransition(tt.from, tt.to))
		})
	}
}

func TestStateMachine_TerminalStates(t *testing.T) {
	withWithdrawals := domain.NewStateMachine(true)
	assert.False(t, withWithdrawals.IsTerminal(domain.StatusPending))
	assert.False(t, withWithdrawals.IsTerminal(domain.StatusCompleted))
	assert.True(t, withWithdrawals.IsTerminal(domain.StatusCancelled))
	assert.True(t, withWithdrawals.IsTerminal(domain.StatusWithdrawn))

	withoutWithdrawals := domain.NewStateMachine(false)
	assert.True(t, withoutWithdrawals.IsTerminal(domain.StatusCompleted))
	assert.False(t, withoutWithdrawals.CanTransition(domain.StatusCompleted, domain.StatusWithdrawn))
	assert.ElementsMatch(t,
		[]domain.TransactionStatus{domain.StatusCompleted, domain.StatusCancelled},
		withoutWithdrawals.Next(domain.StatusPending))
}

func TestNewTransactionFromQuote_FreezesConversion(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	q := domain.Quote{
		RateID:          "rate-1",
		AgentID:         "agent-1",
		FromCurrency:    "USD",
		ToCurrency:      "AFN",
		Side:            domain.RateSideSell,
		Amount:          decimal.NewFromInt(100),
		Rate:            decimal.RequireFromString("70.8"),
		ConvertedAmount: decimal.NewFromInt(7080),
		Fee:             decimal.NewFromInt(177),
		NetAmount:       decimal.NewFromInt(6903),
	}

	txn := domain.NewTransactionFromQuote("txn-1", "HW00AB1234567890", q,
		domain.Party{Name: "Sender"}, domain.Party{Name: "Receiver"}, "", "user-1", now)

	assert.Equal(t, domain.StatusPending, txn.Status)
	assert.True(t, txn.ToAmount.Equal(decimal.NewFromInt(7080)))
	assert.True(t, txn.ConversionHolds())
	assert.Nil(t, txn.CompletedAt)
	assert.Equal(t, now, txn.CreatedAt)
	assert.Equal(t, "user-1", txn.CreatedBy)
	assert.Equal(t, domain.RateSideSell, txn.RateSide)
}

func TestTransactionStatus_Valid(t *testing.T) {
	assert.True(t, domain.StatusWithdrawn.Valid())
	assert.False(t, domain.TransactionStatus("pending").Valid())
}
