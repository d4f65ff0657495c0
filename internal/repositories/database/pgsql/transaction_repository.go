package pgsql

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	"github.com/SscSPs/hawala_settlement/internal/models"
	"github.com/SscSPs/hawala_settlement/internal/utils/mapping"
	"github.com/SscSPs/hawala_settlement/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, reference_code, agent_id, rate_id, status,
		from_currency, to_currency, from_amount, to_amount, rate, rate_side, fee, net_amount,
		sender_name, sender_phone, sender_city, sender_country,
		receiver_name, receiver_phone, receiver_city, receiver_country,
		notes, completed_at, created_at, created_by, last_updated_at, last_updated_by`

// PgxTransactionRepository stores hawala transactions.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	if err := row.Scan(
		&m.TransactionID, &m.ReferenceCode, &m.AgentID, &m.RateID, &m.Status,
		&m.FromCurrency, &m.ToCurrency, &m.FromAmount, &m.ToAmount, &m.Rate, &m.RateSide, &m.Fee, &m.NetAmount,
		&m.SenderName, &m.SenderPhone, &m.SenderCity, &m.SenderCountry,
		&m.ReceiverName, &m.ReceiverPhone, &m.ReceiverCity, &m.ReceiverCountry,
		&m.Notes, &m.CompletedAt, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// InsertTransactionTx persists txn inside tx. Both the primary key and the
// reference_code unique index surface as apperrors.ErrDuplicate.
func (r *PgxTransactionRepository) InsertTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		        $18, $19, $20, $21, $22, $23, $24, $25, $26, $27);`

	_, err := r.db(tx).Exec(ctx, query,
		m.TransactionID, m.ReferenceCode, m.AgentID, m.RateID, m.Status,
		m.FromCurrency, m.ToCurrency, m.FromAmount, m.ToAmount, m.Rate, m.RateSide, m.Fee, m.NetAmount,
		m.SenderName, m.SenderPhone, m.SenderCity, m.SenderCountry,
		m.ReceiverName, m.ReceiverPhone, m.ReceiverCity, m.ReceiverCountry,
		m.Notes, m.CompletedAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewDuplicateError("reference code " + m.ReferenceCode + " already exists")
		case pgCheckViolation:
			return apperrors.NewValidationError("transaction", "violates a stored constraint")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert transaction", err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its internal ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	return r.findOne(ctx, query, transactionID)
}

// FindTransactionByReferenceCode uses the unique index on reference_code.
func (r *PgxTransactionRepository) FindTransactionByReferenceCode(ctx context.Context, referenceCode string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference_code = $1;`
	return r.findOne(ctx, query, referenceCode)
}

func (r *PgxTransactionRepository) findOne(ctx context.Context, query string, arg string) (*domain.Transaction, error) {
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find transaction", err)
	}
	return txn, nil
}

// CompareAndSetStatus is a single conditional UPDATE; concurrent callers with the
// same expected status serialize on the row lock and only the first matches.
func (r *PgxTransactionRepository) CompareAndSetStatus(ctx context.Context, transactionID string, from, to domain.TransactionStatus, completedAt *time.Time, userID string, at time.Time) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = $3,
		    completed_at = COALESCE($4, completed_at),
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE transaction_id = $1 AND status = $2
		RETURNING ` + transactionColumns + `;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query,
		transactionID, string(from), string(to), completedAt, at, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflictError("transaction " + transactionID + " is no longer " + string(from))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to update transaction status", err)
	}
	return txn, nil
}

// ListTransactionsByAgent pages newest first using a (created_at, transaction_id) keyset.
func (r *PgxTransactionRepository) ListTransactionsByAgent(ctx context.Context, agentID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	query, args, err := buildListTransactionsQuery(agentID, filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions for agent "+agentID, err)
	}
	defer rows.Close()

	limit := pageLimit(filter)
	txns := make([]domain.Transaction, 0, limit+1)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan transaction row", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating transaction rows", err)
	}

	page := &domain.TransactionPage{Transactions: txns}
	if len(txns) > limit {
		// The token points to the last item included in this page.
		last := txns[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		page.NextToken = &token
		page.Transactions = txns[:limit]
	}
	return page, nil
}

func pageLimit(filter domain.TransactionFilter) int {
	if filter.Limit <= 0 {
		return 20
	}
	return filter.Limit
}

// buildListTransactionsQuery fetches one row more than the page size to detect a next page.
func buildListTransactionsQuery(agentID string, filter domain.TransactionFilter) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE agent_id = $1`)
	args := []any{agentID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		sb.WriteString(` AND status = $` + strconv.Itoa(len(args)))
	}

	if filter.NextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(filter.NextToken)
		if err != nil {
			return "", nil, apperrors.NewValidationError("nextToken", "is not a valid pagination token")
		}
		args = append(args, lastCreatedAt, lastID)
		sb.WriteString(` AND (created_at, transaction_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`)
	}

	args = append(args, pageLimit(filter)+1)
	sb.WriteString(` ORDER BY created_at DESC, transaction_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`)
	return sb.String(), args, nil
}
