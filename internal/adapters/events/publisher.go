// Package events delivers transaction lifecycle notifications after commit.
// Delivery is best effort: the ledger never depends on a subscriber.
package events

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/core/ports"
	"github.com/SscSPs/hawala_settlement/internal/platform/metrics"
)

// NopPublisher drops every event.
type NopPublisher struct{}

var _ ports.TransactionEventPublisher = NopPublisher{}

func (NopPublisher) Publish(context.Context, domain.TransactionEvent) error { return nil }

// LogPublisher writes events to a structured logger. Useful in development
// and as a local audit trail next to a broker.
type LogPublisher struct {
	logger *slog.Logger
}

var _ ports.TransactionEventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event domain.TransactionEvent) error {
	p.logger.InfoContext(ctx, "transaction event",
		slog.String("type", string(event.Type)),
		slog.String("transaction_id", event.TransactionID),
		slog.String("reference_code", event.ReferenceCode),
		slog.String("agent_id", event.AgentID),
		slog.String("previous_status", string(event.PreviousStatus)),
		slog.String("status", string(event.Status)),
		slog.Time("occurred_at", event.OccurredAt),
	)
	return nil
}

// Named pairs a publisher with the label used for its failure metric.
type Named struct {
	Name      string
	Publisher ports.TransactionEventPublisher
}

// FanOut hands each event to every publisher, even when an earlier one fails.
type FanOut struct {
	publishers []Named
}

var _ ports.TransactionEventPublisher = (*FanOut)(nil)

func NewFanOut(publishers ...Named) *FanOut {
	return &FanOut{publishers: publishers}
}

func (f *FanOut) Publish(ctx context.Context, event domain.TransactionEvent) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publisher.Publish(ctx, event); err != nil {
			metrics.EventPublishFailures.WithLabelValues(p.Name).Inc()
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
