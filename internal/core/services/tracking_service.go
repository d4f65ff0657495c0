package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/core/ports"
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/SscSPs/hawala_settlement/internal/platform/metrics"
	"github.com/SscSPs/hawala_settlement/internal/utils/refcode"
	"golang.org/x/sync/singleflight"
)

// CodeValidator checks the format of a normalized reference code.
type CodeValidator interface {
	Valid(code string) bool
}

// trackingService answers public, unauthenticated status lookups.
type trackingService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
	codes   CodeValidator
	cache   ports.TrackingCache
	group   singleflight.Group
}

// NewTrackingService creates the lookup service. cache may be nil.
func NewTrackingService(txnRepo portsrepo.TransactionReader, codes CodeValidator, cache ports.TrackingCache) portssvc.TrackingSvc {
	return &trackingService{
		txnRepo: txnRepo,
		codes:   codes,
		cache:   cache,
	}
}

var _ portssvc.TrackingSvc = (*trackingService)(nil)

func (s *trackingService) Lookup(ctx context.Context, code string) (*domain.TrackingView, error) {
	normalized := refcode.Normalize(code)
	if !s.codes.Valid(normalized) {
		metrics.TrackingLookups.WithLabelValues(metrics.ResultNotFound).Inc()
		s.LogDebug(ctx, "Malformed tracking code")
		return nil, apperrors.NewNotFoundError("transaction not found")
	}

	if s.cache != nil {
		view, ok, err := s.cache.Get(ctx, normalized)
		if err != nil {
			s.LogWarn(ctx, "Tracking cache read failed",
				slog.String("error", err.Error()))
		} else if ok {
			metrics.TrackingLookups.WithLabelValues(metrics.ResultHit).Inc()
			return view, nil
		}
	}

	// The shared read must outlive whichever caller started it, so it runs
	// detached from that caller's cancellation; each caller still waits on its own ctx.
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(normalized, func() (any, error) {
		return s.load(shared, normalized)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		s.LogDebug(ctx, "Tracking lookup abandoned by caller",
			slog.String("error", ctx.Err().Error()))
		return nil, ctx.Err()
	}
	if res.Err != nil {
		return nil, res.Err
	}

	// singleflight shares one value between callers; hand each its own copy
	view := *res.Val.(*domain.TrackingView)
	return &view, nil
}

func (s *trackingService) load(ctx context.Context, code string) (*domain.TrackingView, error) {
	txn, err := s.txnRepo.FindTransactionByReferenceCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.TrackingLookups.WithLabelValues(metrics.ResultNotFound).Inc()
			// probing is expected on a public endpoint; keep it out of error logs
			s.LogDebug(ctx, "Tracking code not found")
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.LogWarn(ctx, "Tracking read interrupted", slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to read transaction for tracking")
		}
		return nil, fmt.Errorf("failed to read transaction: %w", err)
	}

	metrics.TrackingLookups.WithLabelValues(metrics.ResultMiss).Inc()
	view := domain.NewTrackingView(*txn)
	// A transition committed between the read above and this Set can have its
	// invalidation overwritten by the older view; that staleness is bounded by the cache TTL.
	if s.cache != nil {
		if err := s.cache.Set(ctx, view); err != nil {
			s.LogWarn(ctx, "Tracking cache write failed",
				slog.String("error", err.Error()))
		}
	}
	return &view, nil
}
