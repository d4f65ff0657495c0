package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// rateService is the agent rate catalog.
type rateService struct {
	BaseService
	rateRepo portsrepo.RateRepositoryFacade
	clock    domain.Clock
}

// RateServiceOption is a functional option for configuring the rate service
type RateServiceOption func(*rateService)

// WithRateAgentReader enables the agent approval check on rate mutations.
func WithRateAgentReader(agents portsrepo.AgentReader) RateServiceOption {
	return func(s *rateService) {
		s.AgentReader = agents
	}
}

// WithRateClock overrides the clock used for audit stamps.
func WithRateClock(clock domain.Clock) RateServiceOption {
	return func(s *rateService) {
		s.clock = clock
	}
}

// NewRateService creates a new rate service with the provided options
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, options ...RateServiceOption) portssvc.RateSvcFacade {
	svc := &rateService{
		rateRepo: rateRepo,
		clock:    domain.SystemClock,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) UpsertRate(ctx context.Context, actor domain.Actor, in domain.RateInput) (*domain.Rate, error) {
	in.FromCurrency = domain.NormalizeCurrencyCode(in.FromCurrency)
	in.ToCurrency = domain.NormalizeCurrencyCode(in.ToCurrency)
	if err := validateRateInput(in); err != nil {
		return nil, err
	}

	if _, err := s.AuthorizeAgentMutation(ctx, actor, in.AgentID, false); err != nil {
		return nil, err
	}

	now := s.clock()
	rate := domain.Rate{
		RateID:       uuid.NewString(),
		AgentID:      in.AgentID,
		FromCurrency: in.FromCurrency,
		ToCurrency:   in.ToCurrency,
		BuyRate:      in.BuyRate,
		SellRate:     in.SellRate,
		IsActive:     true,
		ValidUntil:   in.ValidUntil,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	stored, err := s.rateRepo.UpsertRate(ctx, rate)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert rate",
			slog.String("agent_id", in.AgentID),
			slog.String("pair", rate.Pair().String()))
		return nil, fmt.Errorf("failed to upsert rate: %w", err)
	}

	s.LogInfo(ctx, "Rate upserted",
		slog.String("rate_id", stored.RateID),
		slog.String("agent_id", stored.AgentID),
		slog.String("pair", stored.Pair().String()),
		slog.String("buy_rate", stored.BuyRate.String()),
		slog.String("sell_rate", stored.SellRate.String()))
	return stored, nil
}

func (s *rateService) UpdateRate(ctx context.Context, actor domain.Actor, rateID string, patch domain.RatePatch) (*domain.Rate, error) {
	if rateID == "" {
		return nil, apperrors.NewValidationError("rateID", "is required")
	}
	if err := validateRatePatch(patch); err != nil {
		return nil, err
	}

	existing, err := s.rateRepo.FindRateByID(ctx, rateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("rate " + rateID + " not found")
		}
		s.LogError(ctx, err, "Failed to load rate for update", slog.String("rate_id", rateID))
		return nil, fmt.Errorf("failed to load rate: %w", err)
	}

	if _, err := s.AuthorizeAgentMutation(ctx, actor, existing.AgentID, false); err != nil {
		return nil, err
	}

	updated := patch.Apply(*existing)
	updated.LastUpdatedAt = s.clock()
	updated.LastUpdatedBy = actor.UserID

	stored, err := s.rateRepo.UpdateRate(ctx, updated)
	if err != nil {
		s.LogError(ctx, err, "Failed to update rate", slog.String("rate_id", rateID))
		return nil, fmt.Errorf("failed to update rate: %w", err)
	}

	s.LogInfo(ctx, "Rate updated",
		slog.String("rate_id", stored.RateID),
		slog.String("agent_id", stored.AgentID),
		slog.Bool("is_active", stored.IsActive))
	return stored, nil
}

func (s *rateService) SetRateActive(ctx context.Context, actor domain.Actor, agentID, fromCurrency, toCurrency string, active bool) (*domain.Rate, error) {
	fromCurrency = domain.NormalizeCurrencyCode(fromCurrency)
	toCurrency = domain.NormalizeCurrencyCode(toCurrency)
	if err := validatePair(agentID, fromCurrency, toCurrency); err != nil {
		return nil, err
	}

	if _, err := s.AuthorizeAgentMutation(ctx, actor, agentID, false); err != nil {
		return nil, err
	}

	stored, err := s.rateRepo.SetRateActive(ctx, agentID, fromCurrency, toCurrency, active, actor.UserID, s.clock())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewRateNotFoundError(fmt.Sprintf("no rate for %s/%s", fromCurrency, toCurrency))
		}
		s.LogError(ctx, err, "Failed to toggle rate",
			slog.String("agent_id", agentID),
			slog.Bool("active", active))
		return nil, fmt.Errorf("failed to set rate active flag: %w", err)
	}

	s.LogInfo(ctx, "Rate activity changed",
		slog.String("rate_id", stored.RateID),
		slog.Bool("is_active", stored.IsActive))
	return stored, nil
}

// FindRate returns the stored row regardless of activity or expiry; quoting applies those checks.
func (s *rateService) FindRate(ctx context.Context, agentID, fromCurrency, toCurrency string) (*domain.Rate, error) {
	fromCurrency = domain.NormalizeCurrencyCode(fromCurrency)
	toCurrency = domain.NormalizeCurrencyCode(toCurrency)
	if err := validatePair(agentID, fromCurrency, toCurrency); err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindRate(ctx, agentID, fromCurrency, toCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewRateNotFoundError(fmt.Sprintf("no rate for %s/%s", fromCurrency, toCurrency))
		}
		return nil, fmt.Errorf("failed to find rate: %w", err)
	}
	return rate, nil
}

func (s *rateService) GetRateByID(ctx context.Context, rateID string) (*domain.Rate, error) {
	rate, err := s.rateRepo.FindRateByID(ctx, rateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("rate " + rateID + " not found")
		}
		return nil, fmt.Errorf("failed to get rate: %w", err)
	}
	return rate, nil
}

// ListAgentRates returns only rates that can currently be quoted.
func (s *rateService) ListAgentRates(ctx context.Context, agentID string) ([]domain.Rate, error) {
	if agentID == "" {
		return nil, apperrors.NewValidationError("agentID", "is required")
	}
	rates, err := s.rateRepo.ListRatesByAgent(ctx, agentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rates", slog.String("agent_id", agentID))
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}

	now := s.clock()
	usable := make([]domain.Rate, 0, len(rates))
	for _, r := range rates {
		if r.IsUsableAt(now) {
			usable = append(usable, r)
		}
	}
	return usable, nil
}

func validatePair(agentID, fromCurrency, toCurrency string) error {
	fields := map[string]string{}
	if agentID == "" {
		fields["agentID"] = "is required"
	}
	addPairErrors(fields, fromCurrency, toCurrency)
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}

func addPairErrors(fields map[string]string, fromCurrency, toCurrency string) {
	if !domain.IsCurrencyCode(fromCurrency) {
		fields["fromCurrency"] = "must be a 3-letter currency code"
	}
	if !domain.IsCurrencyCode(toCurrency) {
		fields["toCurrency"] = "must be a 3-letter currency code"
	}
	if fromCurrency != "" && fromCurrency == toCurrency {
		fields["toCurrency"] = "must differ from fromCurrency"
	}
}

func validateRateInput(in domain.RateInput) error {
	fields := map[string]string{}
	if in.AgentID == "" {
		fields["agentID"] = "is required"
	}
	addPairErrors(fields, in.FromCurrency, in.ToCurrency)
	if !in.BuyRate.GreaterThan(decimal.Zero) {
		fields["buyRate"] = "must be positive"
	}
	if !in.SellRate.GreaterThan(decimal.Zero) {
		fields["sellRate"] = "must be positive"
	}
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}

func validateRatePatch(p domain.RatePatch) error {
	if p.IsEmpty() {
		return apperrors.NewValidationError("body", "at least one field must be provided")
	}
	fields := map[string]string{}
	if p.BuyRate != nil && !p.BuyRate.GreaterThan(decimal.Zero) {
		fields["buyRate"] = "must be positive"
	}
	if p.SellRate != nil && !p.SellRate.GreaterThan(decimal.Zero) {
		fields["sellRate"] = "must be positive"
	}
	if p.ClearValidUntil && p.ValidUntil != nil {
		fields["validUntil"] = "cannot be set and cleared at once"
	}
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}
