package services

import (
	"context"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
)

// RateReaderSvc defines read operations for the rate catalog
type RateReaderSvc interface {
	// FindRate returns the current row for the pair or apperrors.ErrRateNotFound.
	FindRate(ctx context.Context, agentID, fromCurrency, toCurrency string) (*domain.Rate, error)

	// GetRateByID retrieves a rate by its ID.
	GetRateByID(ctx context.Context, rateID string) (*domain.Rate, error)

	// ListAgentRates retrieves the public rate board of an agent.
	ListAgentRates(ctx context.Context, agentID string) ([]domain.Rate, error)
}

// RateWriterSvc defines write operations for the rate catalog
type RateWriterSvc interface {
	// UpsertRate creates or replaces the rate for the input's agent and pair.
	UpsertRate(ctx context.Context, actor domain.Actor, in domain.RateInput) (*domain.Rate, error)

	// UpdateRate applies a partial update to a rate identified by ID.
	UpdateRate(ctx context.Context, actor domain.Actor, rateID string, patch domain.RatePatch) (*domain.Rate, error)

	// SetRateActive toggles whether the rate may be quoted.
	SetRateActive(ctx context.Context, actor domain.Actor, agentID, fromCurrency, toCurrency string, active bool) (*domain.Rate, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
