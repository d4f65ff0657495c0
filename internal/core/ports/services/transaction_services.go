package services

import (
	"context"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
)

// TransactionReaderSvc defines read operations for the transaction ledger
type TransactionReaderSvc interface {
	// GetTransaction returns a transaction by internal ID or reference code to its owner.
	GetTransaction(ctx context.Context, actor domain.Actor, idOrCode string) (*domain.Transaction, error)

	// ListAgentTransactions pages through an agent's transactions, newest first.
	ListAgentTransactions(ctx context.Context, actor domain.Actor, agentID string, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

// TransactionWriterSvc defines write operations for the transaction ledger
type TransactionWriterSvc interface {
	// CreateTransaction quotes, assigns a reference code and persists atomically.
	CreateTransaction(ctx context.Context, actor domain.Actor, req domain.TransactionRequest) (*domain.Transaction, error)

	// TransitionTransaction compare-and-swaps the status. On apperrors.ErrConflict the
	// returned transaction is the authoritative stored state.
	TransitionTransaction(ctx context.Context, actor domain.Actor, req domain.TransitionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
