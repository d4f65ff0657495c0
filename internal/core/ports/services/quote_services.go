package services

import (
	"context"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// QuoteSvc resolves the applicable rate for a conversion and prices it.
type QuoteSvc interface {
	// Quote prices req against the agent's active, unexpired rate.
	Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)

	// QuoteTx is Quote reading the rate inside tx, used while creating a transaction.
	QuoteTx(ctx context.Context, tx pgx.Tx, req domain.QuoteRequest) (*domain.Quote, error)
}
