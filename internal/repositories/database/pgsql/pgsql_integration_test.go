package pgsql

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	"github.com/SscSPs/hawala_settlement/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// PostgresTestSuite runs the repositories against a real database named by
// TEST_PGSQL_URL. Each test works under a fresh agent so runs do not collide.
type PostgresTestSuite struct {
	suite.Suite
	ctx     context.Context
	pool    *pgxpool.Pool
	repos   portsrepo.RepositoryProvider
	agentID string
}

func TestPostgresTestSuite(t *testing.T) {
	url := os.Getenv("TEST_PGSQL_URL")
	if url == "" {
		t.Skip("TEST_PGSQL_URL not set")
	}
	suite.Run(t, &PostgresTestSuite{})
}

func (s *PostgresTestSuite) SetupSuite() {
	url := os.Getenv("TEST_PGSQL_URL")
	s.ctx = context.Background()
	s.Require().NoError(database.RunMigrations(url, "file://../../../../migrations", slog.Default()))

	pool, err := database.NewPgxPool(s.ctx, url, true)
	s.Require().NoError(err)
	s.pool = pool
	s.repos = NewRepositoryProvider(pool)
}

func (s *PostgresTestSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
}

func (s *PostgresTestSuite) SetupTest() {
	s.agentID = "agent-" + uuid.NewString()
	_, err := s.pool.Exec(s.ctx, `
		INSERT INTO agents (agent_id, business_name, status, created_by, last_updated_by)
		VALUES ($1, 'Kabul Exchange', 'APPROVED', 'test', 'test');`, s.agentID)
	s.Require().NoError(err)
}

func (s *PostgresTestSuite) seedRate() *domain.Rate {
	now := time.Now().UTC().Truncate(time.Microsecond)
	rate, err := s.repos.RateRepo.UpsertRate(s.ctx, domain.Rate{
		RateID:       uuid.NewString(),
		AgentID:      s.agentID,
		FromCurrency: "USD",
		ToCurrency:   "AFN",
		BuyRate:      decimal.RequireFromString("70.50"),
		SellRate:     decimal.RequireFromString("70.80"),
		IsActive:     true,
		AuditFields:  domain.AuditFields{CreatedAt: now, CreatedBy: "user-1", LastUpdatedAt: now, LastUpdatedBy: "user-1"},
	})
	s.Require().NoError(err)
	return rate
}

func (s *PostgresTestSuite) insertPending(rate *domain.Rate, code string) (domain.Transaction, error) {
	quote := domain.Quote{
		RateID:       rate.RateID,
		AgentID:      s.agentID,
		FromCurrency: "USD",
		ToCurrency:   "AFN",
		Side:         domain.RateSideSell,
		Amount:       decimal.RequireFromString("100"),
		Rate:         rate.SellRate,
		Fee:          decimal.RequireFromString("177"),
		NetAmount:    decimal.RequireFromString("6903"),
	}
	party := domain.Party{Name: "Ahmad Karimi", Phone: "+1 555 0100", City: "Fremont", Country: "US"}
	txn := domain.NewTransactionFromQuote(uuid.NewString(), code, quote, party, party, "", "user-1",
		time.Now().UTC().Truncate(time.Microsecond))

	repo := s.repos.TransactionRepo
	tx, err := repo.Begin(s.ctx)
	if err != nil {
		return txn, err
	}
	defer func() { _ = repo.Rollback(s.ctx, tx) }()
	if err := repo.InsertTransactionTx(s.ctx, tx, txn); err != nil {
		return txn, err
	}
	return txn, repo.Commit(s.ctx, tx)
}

func uniqueCode() string {
	return "HW" + uuid.NewString()[:8]
}

func (s *PostgresTestSuite) TestUpsertRate_ReplacesInPlace() {
	first := s.seedRate()

	later := time.Now().UTC().Add(time.Minute).Truncate(time.Microsecond)
	second, err := s.repos.RateRepo.UpsertRate(s.ctx, domain.Rate{
		RateID:       uuid.NewString(),
		AgentID:      s.agentID,
		FromCurrency: "USD",
		ToCurrency:   "AFN",
		BuyRate:      decimal.RequireFromString("71"),
		SellRate:     decimal.RequireFromString("71.25"),
		IsActive:     true,
		AuditFields:  domain.AuditFields{CreatedAt: later, CreatedBy: "user-2", LastUpdatedAt: later, LastUpdatedBy: "user-2"},
	})

	s.Require().NoError(err)
	s.Equal(first.RateID, second.RateID)
	s.Equal("user-1", second.CreatedBy)
	s.Equal("user-2", second.LastUpdatedBy)
	s.True(second.SellRate.Equal(decimal.RequireFromString("71.25")))

	rates, err := s.repos.RateRepo.ListRatesByAgent(s.ctx, s.agentID)
	s.Require().NoError(err)
	s.Len(rates, 1)
}

func (s *PostgresTestSuite) TestInsertTransaction_DuplicateCode() {
	rate := s.seedRate()
	code := uniqueCode()
	_, err := s.insertPending(rate, code)
	s.Require().NoError(err)

	_, err = s.insertPending(rate, code)

	s.True(errors.Is(err, apperrors.ErrDuplicate), "got %v", err)
}

func (s *PostgresTestSuite) TestCompareAndSetStatus_ConcurrentCompleteAndCancel() {
	rate := s.seedRate()
	txn, err := s.insertPending(rate, uniqueCode())
	s.Require().NoError(err)

	targets := []domain.TransactionStatus{domain.StatusCompleted, domain.StatusCancelled}
	results := make([]*domain.Transaction, len(targets))
	errs := make([]error, len(targets))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, to := range targets {
		wg.Add(1)
		go func(i int, to domain.TransactionStatus) {
			defer wg.Done()
			<-start
			now := time.Now().UTC()
			var completedAt *time.Time
			if to == domain.StatusCompleted {
				completedAt = &now
			}
			results[i], errs[i] = s.repos.TransactionRepo.CompareAndSetStatus(s.ctx,
				txn.TransactionID, domain.StatusPending, to, completedAt, "user-1", now)
		}(i, to)
	}
	close(start)
	wg.Wait()

	var winner domain.TransactionStatus
	successes, conflicts := 0, 0
	for i := range targets {
		switch {
		case errs[i] == nil:
			successes++
			winner = results[i].Status
		case errors.Is(errs[i], apperrors.ErrConflict):
			conflicts++
		default:
			s.Failf("unexpected error", "%v", errs[i])
		}
	}
	s.Equal(1, successes)
	s.Equal(1, conflicts)

	stored, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, txn.TransactionID)
	s.Require().NoError(err)
	s.Equal(winner, stored.Status)
	s.Equal(winner == domain.StatusCompleted, stored.CompletedAt != nil)
	s.True(stored.ToAmount.Equal(stored.FromAmount.Mul(stored.Rate)))
}
