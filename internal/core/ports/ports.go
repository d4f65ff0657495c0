package ports

import (
	"context"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
)

// Outbound ports that are not backed by the relational store.

// TransactionEventPublisher is the optional notification hook. Publishing happens
// after commit; the ledger stays correct when nothing is subscribed.
type TransactionEventPublisher interface {
	Publish(ctx context.Context, event domain.TransactionEvent) error
}

// TrackingCache holds short-lived public tracking views keyed by reference code.
// No write path ever reads from it.
type TrackingCache interface {
	// Get returns the cached view and whether it was present.
	Get(ctx context.Context, referenceCode string) (*domain.TrackingView, bool, error)

	// Set stores view under its reference code for the cache's TTL.
	Set(ctx context.Context, view domain.TrackingView) error

	// Invalidate drops the entry so the next lookup reads storage.
	Invalidate(ctx context.Context, referenceCode string) error
}
