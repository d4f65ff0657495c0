package services

import (
	"context"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
)

// TrackingSvc serves the unauthenticated status lookup.
type TrackingSvc interface {
	// Lookup returns the sanitized view for code or apperrors.ErrNotFound.
	Lookup(ctx context.Context, code string) (*domain.TrackingView, error)
}
