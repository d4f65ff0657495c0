package pgsql

import (
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AgentRepo:       newPgxAgentRepository(dbPool),
		RateRepo:        newPgxRateRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
