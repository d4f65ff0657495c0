package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/core/services"
	"github.com/SscSPs/hawala_settlement/internal/utils/refcode"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func trackedTransaction() *domain.Transaction {
	return &domain.Transaction{
		TransactionID: txnID,
		ReferenceCode: codeA,
		AgentID:       "agent-1",
		RateID:        "rate-1",
		Status:        domain.StatusPending,
		FromCurrency:  "USD",
		ToCurrency:    "AFN",
		FromAmount:    decimal.RequireFromString("100"),
		ToAmount:      decimal.RequireFromString("7080"),
		Rate:          decimal.RequireFromString("70.80"),
		Fee:           decimal.RequireFromString("177"),
		NetAmount:     decimal.RequireFromString("6903"),
		Sender:        domain.Party{Name: "Ahmad Karimi", Phone: "+1 555 0100", City: "Fremont", Country: "US"},
		Receiver:      domain.Party{Name: "Zahra Noori", Phone: "+93 70 000 0000", City: "Kabul", Country: "AF"},
		Notes:         "school fees",
	}
}

func newGenerator(t *testing.T) *refcode.Generator {
	g, err := refcode.New()
	require.NoError(t, err)
	return g
}

func TestTrackingLookup_SanitizesAndCaches(t *testing.T) {
	repo := new(MockTransactionRepository)
	cache := new(MockTrackingCache)
	repo.On("FindTransactionByReferenceCode", mock.Anything, codeA).Return(trackedTransaction(), nil).Once()
	cache.On("Get", mock.Anything, codeA).Return(nil, false, nil).Once()
	cache.On("Set", mock.Anything, mock.MatchedBy(func(v domain.TrackingView) bool {
		return v.ReferenceCode == codeA
	})).Return(nil).Once()
	svc := services.NewTrackingService(repo, newGenerator(t), cache)

	view, err := svc.Lookup(context.Background(), " hw00 1101 2345 678z ")

	require.NoError(t, err)
	assert.Equal(t, codeA, view.ReferenceCode)
	assert.Equal(t, domain.StatusPending, view.Status)
	assert.Equal(t, "A**** K*****", view.SenderName)
	assert.Equal(t, "Z**** N****", view.ReceiverName)
	assert.Equal(t, "Kabul", view.ReceiverCity)
	assert.True(t, view.NetAmount.Equal(decimal.RequireFromString("6903")))
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestTrackingLookup_CacheHitSkipsStorage(t *testing.T) {
	repo := new(MockTransactionRepository)
	cache := new(MockTrackingCache)
	cached := domain.NewTrackingView(*trackedTransaction())
	cache.On("Get", mock.Anything, codeA).Return(&cached, true, nil).Once()
	svc := services.NewTrackingService(repo, newGenerator(t), cache)

	view, err := svc.Lookup(context.Background(), codeA)

	require.NoError(t, err)
	assert.Equal(t, cached, *view)
	repo.AssertNotCalled(t, "FindTransactionByReferenceCode", mock.Anything, mock.Anything)
}

func TestTrackingLookup_CacheErrorFallsBackToStorage(t *testing.T) {
	repo := new(MockTransactionRepository)
	cache := new(MockTrackingCache)
	cache.On("Get", mock.Anything, codeA).Return(nil, false, errors.New("redis: connection refused")).Once()
	cache.On("Set", mock.Anything, mock.Anything).Return(errors.New("redis: connection refused")).Once()
	repo.On("FindTransactionByReferenceCode", mock.Anything, codeA).Return(trackedTransaction(), nil).Once()
	svc := services.NewTrackingService(repo, newGenerator(t), cache)

	view, err := svc.Lookup(context.Background(), codeA)

	require.NoError(t, err)
	assert.Equal(t, codeA, view.ReferenceCode)
}

func TestTrackingLookup_NonexistentIsNotFound(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewTrackingService(repo, newGenerator(t), nil)

	_, err := svc.Lookup(context.Background(), "NONEXISTENT")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	repo.AssertNotCalled(t, "FindTransactionByReferenceCode", mock.Anything, mock.Anything)
}

func TestTrackingLookup_WellFormedButUnknown(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("FindTransactionByReferenceCode", mock.Anything, codeB).Return(nil, apperrors.ErrNotFound).Once()
	svc := services.NewTrackingService(repo, newGenerator(t), nil)

	_, err := svc.Lookup(context.Background(), codeB)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestTrackingLookup_IsIdempotent(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("FindTransactionByReferenceCode", mock.Anything, codeA).Return(trackedTransaction(), nil).Twice()
	svc := services.NewTrackingService(repo, newGenerator(t), nil)

	first, err := svc.Lookup(context.Background(), codeA)
	require.NoError(t, err)
	second, err := svc.Lookup(context.Background(), codeA)
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
	assert.NotSame(t, first, second)
}

// blockingReader lets one lookup stall inside storage while others pile up behind it.
type blockingReader struct {
	MockTransactionRepository
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (b *blockingReader) FindTransactionByReferenceCode(ctx context.Context, _ string) (*domain.Transaction, error) {
	if b.calls.Add(1) == 1 {
		close(b.started)
	}
	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return trackedTransaction(), nil
}

func TestTrackingLookup_CoalescesConcurrentMisses(t *testing.T) {
	reader := &blockingReader{started: make(chan struct{}), release: make(chan struct{})}
	svc := services.NewTrackingService(reader, newGenerator(t), nil)

	const callers = 8
	views := make([]*domain.TrackingView, callers)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		views[0], _ = svc.Lookup(context.Background(), codeA)
	}()
	<-reader.started
	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			views[i], _ = svc.Lookup(context.Background(), codeA)
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(reader.release)
	wg.Wait()

	assert.Equal(t, int32(1), reader.calls.Load())
	for _, v := range views {
		require.NotNil(t, v)
		assert.Equal(t, codeA, v.ReferenceCode)
	}
}

func TestTrackingLookup_CancelledLeaderDoesNotFailFollowers(t *testing.T) {
	reader := &blockingReader{started: make(chan struct{}), release: make(chan struct{})}
	svc := services.NewTrackingService(reader, newGenerator(t), nil)

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := svc.Lookup(leaderCtx, codeA)
		leaderErr <- err
	}()
	<-reader.started

	type result struct {
		view *domain.TrackingView
		err  error
	}
	follower := make(chan result, 1)
	go func() {
		view, err := svc.Lookup(context.Background(), codeA)
		follower <- result{view, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	select {
	case err := <-leaderErr:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(reader.release)
	select {
	case res := <-follower:
		require.NoError(t, res.err)
		require.NotNil(t, res.view)
		assert.Equal(t, codeA, res.view.ReferenceCode)
	case <-time.After(time.Second):
		t.Fatal("follower did not return")
	}
	assert.Equal(t, int32(1), reader.calls.Load())
}
