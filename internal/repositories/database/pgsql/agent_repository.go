package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	"github.com/SscSPs/hawala_settlement/internal/models"
	"github.com/SscSPs/hawala_settlement/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAgentRepository reads agents maintained by the admin workflow.
type PgxAgentRepository struct {
	BaseRepository
}

func newPgxAgentRepository(pool *pgxpool.Pool) portsrepo.AgentRepositoryFacade {
	return &PgxAgentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AgentRepositoryFacade = (*PgxAgentRepository)(nil)

// FindAgentByID retrieves an agent by its ID.
func (r *PgxAgentRepository) FindAgentByID(ctx context.Context, agentID string) (*domain.Agent, error) {
	query := `
		SELECT agent_id, business_name, city, country, status, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM agents
		WHERE agent_id = $1;
	`
	var m models.Agent
	err := r.Pool.QueryRow(ctx, query, agentID).Scan(
		&m.AgentID, &m.BusinessName, &m.City, &m.Country, &m.Status, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("agent " + agentID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find agent "+agentID, err)
	}

	agent := mapping.ToDomainAgent(m)
	return &agent, nil
}
