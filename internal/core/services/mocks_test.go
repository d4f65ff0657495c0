package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock AgentRepository ---
type MockAgentRepository struct {
	mock.Mock
}

func (m *MockAgentRepository) FindAgentByID(ctx context.Context, agentID string) (*domain.Agent, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agent), args.Error(1)
}

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindRate(ctx context.Context, agentID, from, to string) (*domain.Rate, error) {
	args := m.Called(ctx, agentID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepository) FindRateByID(ctx context.Context, rateID string) (*domain.Rate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepository) ListRatesByAgent(ctx context.Context, agentID string) ([]domain.Rate, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateRepository) FindRateForQuoteTx(ctx context.Context, tx pgx.Tx, agentID, from, to string) (*domain.Rate, error) {
	args := m.Called(ctx, tx, agentID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepository) UpsertRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepository) UpdateRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepository) SetRateActive(ctx context.Context, agentID, from, to string, active bool, userID string, at time.Time) (*domain.Rate, error) {
	args := m.Called(ctx, agentID, from, to, active, userID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByReferenceCode(ctx context.Context, code string) (*domain.Transaction, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAgent(ctx context.Context, agentID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	args := m.Called(ctx, agentID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionRepository) InsertTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return m.Called(ctx, tx, txn).Error(0)
}

func (m *MockTransactionRepository) CompareAndSetStatus(ctx context.Context, id string, from, to domain.TransactionStatus, completedAt *time.Time, userID string, at time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, id, from, to, completedAt, userID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Mock TransactionEventPublisher ---
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event domain.TransactionEvent) error {
	return m.Called(ctx, event).Error(0)
}

// --- Mock TrackingCache ---
type MockTrackingCache struct {
	mock.Mock
}

func (m *MockTrackingCache) Get(ctx context.Context, code string) (*domain.TrackingView, bool, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.TrackingView), args.Bool(1), args.Error(2)
}

func (m *MockTrackingCache) Set(ctx context.Context, view domain.TrackingView) error {
	return m.Called(ctx, view).Error(0)
}

func (m *MockTrackingCache) Invalidate(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

// sequenceCodes hands out codes in order, then repeats the last one.
type sequenceCodes struct {
	codes []string
	n     int
}

func (s *sequenceCodes) Generate() (string, error) {
	code := s.codes[min(s.n, len(s.codes)-1)]
	s.n++
	return code, nil
}

func fixedClock(t time.Time) domain.Clock {
	return func() time.Time { return t }
}

func approvedAgent(id string) *domain.Agent {
	return &domain.Agent{AgentID: id, BusinessName: "Kabul Exchange", Status: domain.AgentApproved, IsActive: true}
}
