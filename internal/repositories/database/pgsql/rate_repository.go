package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	"github.com/SscSPs/hawala_settlement/internal/models"
	"github.com/SscSPs/hawala_settlement/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rateColumns = `rate_id, agent_id, from_currency, to_currency, buy_rate, sell_rate, is_active, valid_until,
		created_at, created_by, last_updated_at, last_updated_by`

// PgxRateRepository implements the rate catalog storage using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

func scanRate(row pgx.Row) (*domain.Rate, error) {
	var m models.Rate
	if err := row.Scan(
		&m.RateID, &m.AgentID, &m.FromCurrency, &m.ToCurrency, &m.BuyRate, &m.SellRate,
		&m.IsActive, &m.ValidUntil,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	rate := mapping.ToDomainRate(m)
	return &rate, nil
}

func rateError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(what + " not found")
	}
	if pgErrorCode(err) == pgCheckViolation {
		return fmt.Errorf("%w: %s violates a rate constraint", apperrors.ErrValidation, what)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "failed to access "+what, err)
}

// FindRate retrieves the row for the pair regardless of activity or expiry.
func (r *PgxRateRepository) FindRate(ctx context.Context, agentID, fromCurrency, toCurrency string) (*domain.Rate, error) {
	return r.FindRateForQuoteTx(ctx, nil, agentID, fromCurrency, toCurrency)
}

// FindRateForQuoteTx reads the row with FOR SHARE when tx is set, so an upsert
// racing with transaction creation waits for the creating transaction to finish.
func (r *PgxRateRepository) FindRateForQuoteTx(ctx context.Context, tx pgx.Tx, agentID, fromCurrency, toCurrency string) (*domain.Rate, error) {
	query := `SELECT ` + rateColumns + `
		FROM rates
		WHERE agent_id = $1 AND from_currency = $2 AND to_currency = $3`
	if tx != nil {
		query += ` FOR SHARE`
	}

	rate, err := scanRate(r.db(tx).QueryRow(ctx, query, agentID, fromCurrency, toCurrency))
	if err != nil {
		return nil, rateError(err, fmt.Sprintf("rate %s/%s for agent %s", fromCurrency, toCurrency, agentID))
	}
	return rate, nil
}

// FindRateByID retrieves a rate by its ID.
func (r *PgxRateRepository) FindRateByID(ctx context.Context, rateID string) (*domain.Rate, error) {
	query := `SELECT ` + rateColumns + ` FROM rates WHERE rate_id = $1;`
	rate, err := scanRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		return nil, rateError(err, "rate "+rateID)
	}
	return rate, nil
}

// ListRatesByAgent retrieves every rate an agent has published, ordered by pair.
func (r *PgxRateRepository) ListRatesByAgent(ctx context.Context, agentID string) ([]domain.Rate, error) {
	query := `SELECT ` + rateColumns + `
		FROM rates
		WHERE agent_id = $1
		ORDER BY from_currency, to_currency;`

	rows, err := r.Pool.Query(ctx, query, agentID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list rates for agent "+agentID, err)
	}
	defer rows.Close()

	rates := []domain.Rate{}
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan rate row", err)
		}
		rates = append(rates, *rate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating rate rows", err)
	}
	return rates, nil
}

// UpsertRate inserts the rate or replaces the existing row for its unique key in
// one statement. The existing row keeps its ID and creation audit fields.
func (r *PgxRateRepository) UpsertRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error) {
	m := mapping.ToModelRate(rate)
	query := `
		INSERT INTO rates (` + rateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (agent_id, from_currency, to_currency) DO UPDATE SET
			buy_rate = EXCLUDED.buy_rate,
			sell_rate = EXCLUDED.sell_rate,
			is_active = EXCLUDED.is_active,
			valid_until = EXCLUDED.valid_until,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + rateColumns + `;`

	stored, err := scanRate(r.Pool.QueryRow(ctx, query,
		m.RateID, m.AgentID, m.FromCurrency, m.ToCurrency, m.BuyRate, m.SellRate, m.IsActive, m.ValidUntil,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	))
	if err != nil {
		return nil, rateError(err, "rate "+rate.Pair().String())
	}
	return stored, nil
}

// UpdateRate overwrites the mutable columns of an existing rate by ID.
func (r *PgxRateRepository) UpdateRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error) {
	m := mapping.ToModelRate(rate)
	query := `
		UPDATE rates
		SET buy_rate = $2, sell_rate = $3, is_active = $4, valid_until = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE rate_id = $1
		RETURNING ` + rateColumns + `;`

	stored, err := scanRate(r.Pool.QueryRow(ctx, query,
		m.RateID, m.BuyRate, m.SellRate, m.IsActive, m.ValidUntil, m.LastUpdatedAt, m.LastUpdatedBy,
	))
	if err != nil {
		return nil, rateError(err, "rate "+rate.RateID)
	}
	return stored, nil
}

// SetRateActive toggles the rate for the pair without deleting it.
func (r *PgxRateRepository) SetRateActive(ctx context.Context, agentID, fromCurrency, toCurrency string, active bool, userID string, at time.Time) (*domain.Rate, error) {
	query := `
		UPDATE rates
		SET is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE agent_id = $1 AND from_currency = $2 AND to_currency = $3
		RETURNING ` + rateColumns + `;`

	stored, err := scanRate(r.Pool.QueryRow(ctx, query, agentID, fromCurrency, toCurrency, active, at, userID))
	if err != nil {
		return nil, rateError(err, fmt.Sprintf("rate %s/%s for agent %s", fromCurrency, toCurrency, agentID))
	}
	return stored, nil
}
