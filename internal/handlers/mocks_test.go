package handlers_test

import (
	"context"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) FindRate(ctx context.Context, agentID, from, to string) (*domain.Rate, error) {
	args := m.Called(ctx, agentID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateService) GetRateByID(ctx context.Context, rateID string) (*domain.Rate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateService) ListAgentRates(ctx context.Context, agentID string) ([]domain.Rate, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateService) UpsertRate(ctx context.Context, actor domain.Actor, in domain.RateInput) (*domain.Rate, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateService) UpdateRate(ctx context.Context, actor domain.Actor, rateID string, patch domain.RatePatch) (*domain.Rate, error) {
	args := m.Called(ctx, actor, rateID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateService) SetRateActive(ctx context.Context, actor domain.Actor, agentID, from, to string, active bool) (*domain.Rate, error) {
	args := m.Called(ctx, actor, agentID, from, to, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteService) QuoteTx(ctx context.Context, tx pgx.Tx, req domain.QuoteRequest) (*domain.Quote, error) {
	args := m.Called(ctx, tx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

var _ portssvc.QuoteSvc = (*MockQuoteService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, actor domain.Actor, req domain.TransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) TransitionTransaction(ctx context.Context, actor domain.Actor, req domain.TransitionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, actor domain.Actor, idOrCode string) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, idOrCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListAgentTransactions(ctx context.Context, actor domain.Actor, agentID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	args := m.Called(ctx, actor, agentID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock TrackingService ---
type MockTrackingService struct {
	mock.Mock
}

func (m *MockTrackingService) Lookup(ctx context.Context, code string) (*domain.TrackingView, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrackingView), args.Error(1)
}

var _ portssvc.TrackingSvc = (*MockTrackingService)(nil)

type failingPinger struct{ err error }

func (p failingPinger) Ping(context.Context) error { return p.err }
