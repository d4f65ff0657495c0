package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	"github.com/SscSPs/hawala_settlement/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	AgentReader portsrepo.AgentReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a recoverable problem.
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner checks that the actor owns agentID or is an administrator.
// It does not touch storage.
func (s *BaseService) AuthorizeOwner(ctx context.Context, actor domain.Actor, agentID string) error {
	if actor.CanActFor(agentID) {
		return nil
	}
	s.LogDebug(ctx, "Actor does not own agent",
		slog.String("user_id", actor.UserID),
		slog.String("actor_agent_id", actor.AgentID),
		slog.String("agent_id", agentID))
	return apperrors.NewUnauthorizedError("actor may not act for this agent")
}

// AuthorizeAgentMutation checks ownership and that the agent is approved and
// active. Administrators skip the approval check unless requireActive is set.
func (s *BaseService) AuthorizeAgentMutation(ctx context.Context, actor domain.Actor, agentID string, requireActive bool) (*domain.Agent, error) {
	if err := s.AuthorizeOwner(ctx, actor, agentID); err != nil {
		return nil, err
	}
	if s.AgentReader == nil {
		s.LogDebug(ctx, "No agent reader provided, skipping approval check",
			slog.String("agent_id", agentID))
		return nil, nil
	}

	agent, err := s.AgentReader.FindAgentByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("agent " + agentID + " not found")
		}
		s.LogError(ctx, err, "Failed to load agent for authorization", slog.String("agent_id", agentID))
		return nil, apperrors.NewInternalServerError("failed to load agent", err)
	}

	if !agent.CanTransact() && (requireActive || !actor.IsAdmin) {
		s.LogInfo(ctx, "Agent may not transact",
			slog.String("agent_id", agentID),
			slog.String("agent_status", string(agent.Status)),
			slog.Bool("agent_active", agent.IsActive))
		return nil, apperrors.NewUnauthorizedError("agent is not approved or not active")
	}
	return agent, nil
}
