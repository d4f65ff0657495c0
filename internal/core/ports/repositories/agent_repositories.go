package repositories

import (
	"context"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
)

// AgentReader defines read operations for agent data.
// Agents are maintained by the admin workflow; the core never writes them.
type AgentReader interface {
	// FindAgentByID retrieves an agent or apperrors.ErrNotFound.
	FindAgentByID(ctx context.Context, agentID string) (*domain.Agent, error)
}

// AgentRepositoryFacade combines all agent-related repository interfaces
type AgentRepositoryFacade interface {
	AgentReader
}
