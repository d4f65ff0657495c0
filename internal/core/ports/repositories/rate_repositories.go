package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RateReader defines read operations for agent rates
type RateReader interface {
	// FindRate retrieves the row for (agent, from, to) regardless of activity or expiry.
	FindRate(ctx context.Context, agentID, fromCurrency, toCurrency string) (*domain.Rate, error)

	// FindRateByID retrieves a rate by its ID.
	FindRateByID(ctx context.Context, rateID string) (*domain.Rate, error)

	// ListRatesByAgent retrieves every rate an agent has published.
	ListRatesByAgent(ctx context.Context, agentID string) ([]domain.Rate, error)

	// FindRateForQuoteTx reads the row inside tx with a shared lock so that the
	// quoted values cannot change before tx commits. A nil tx reads from the pool.
	FindRateForQuoteTx(ctx context.Context, tx pgx.Tx, agentID, fromCurrency, toCurrency string) (*domain.Rate, error)
}

// RateWriter defines write operations for agent rates
type RateWriter interface {
	// UpsertRate atomically inserts or replaces the row for the rate's unique key and
	// returns the stored row. Concurrent upserts resolve last-writer-wins.
	UpsertRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error)

	// UpdateRate overwrites the mutable columns of an existing rate by ID.
	UpdateRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error)

	// SetRateActive toggles visibility to quoting without deleting the row.
	SetRateActive(ctx context.Context, agentID, fromCurrency, toCurrency string, active bool, userID string, at time.Time) (*domain.Rate, error)
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
