package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for hawala transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its internal ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionByReferenceCode performs an indexed exact-match lookup.
	FindTransactionByReferenceCode(ctx context.Context, referenceCode string) (*domain.Transaction, error)

	// ListTransactionsByAgent returns the agent's transactions newest first.
	ListTransactionsByAgent(ctx context.Context, agentID string, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

// TransactionWriter defines write operations for hawala transactions
type TransactionWriter interface {
	// InsertTransactionTx persists txn inside tx. A reference code collision is
	// reported as apperrors.ErrDuplicate and leaves tx unusable.
	InsertTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// CompareAndSetStatus moves the transaction from `from` to `to` only if its stored
	// status still equals `from`. completedAt is written only when non-nil.
	// It returns apperrors.ErrConflict when no row matched.
	CompareAndSetStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, completedAt *time.Time, userID string, at time.Time) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
