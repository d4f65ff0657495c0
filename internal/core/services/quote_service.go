package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// quoteService resolves the applicable rate and prices a conversion.
// It never writes.
type quoteService struct {
	BaseService
	rateRepo portsrepo.RateReader
	clock    domain.Clock
}

// NewQuoteService creates the quote engine. A nil clock means domain.SystemClock.
func NewQuoteService(rateRepo portsrepo.RateReader, clock domain.Clock) portssvc.QuoteSvc {
	if clock == nil {
		clock = domain.SystemClock
	}
	return &quoteService{rateRepo: rateRepo, clock: clock}
}

var _ portssvc.QuoteSvc = (*quoteService)(nil)

func (s *quoteService) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	return s.QuoteTx(ctx, nil, req)
}

func (s *quoteService) QuoteTx(ctx context.Context, tx pgx.Tx, req domain.QuoteRequest) (*domain.Quote, error) {
	req.FromCurrency = domain.NormalizeCurrencyCode(req.FromCurrency)
	req.ToCurrency = domain.NormalizeCurrencyCode(req.ToCurrency)
	if err := validateQuoteRequest(req); err != nil {
		return nil, err
	}

	pair := fmt.Sprintf("%s/%s", req.FromCurrency, req.ToCurrency)
	rate, err := s.rateRepo.FindRateForQuoteTx(ctx, tx, req.AgentID, req.FromCurrency, req.ToCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewRateNotFoundError("no rate for " + pair)
		}
		s.LogError(ctx, err, "Failed to read rate for quote",
			slog.String("agent_id", req.AgentID),
			slog.String("pair", pair))
		return nil, fmt.Errorf("failed to read rate: %w", err)
	}

	now := s.clock()
	if !rate.IsActive {
		return nil, apperrors.NewRateNotFoundError("rate for " + pair + " is inactive")
	}
	if rate.IsExpiredAt(now) {
		return nil, apperrors.NewRateNotFoundError("rate for " + pair + " has expired")
	}

	return price(req, *rate, now)
}

// price applies rate to req. It is pure and exact: no rounding happens here.
func price(req domain.QuoteRequest, rate domain.Rate, now time.Time) (*domain.Quote, error) {
	value := rate.ValueFor(req.Side)
	converted := req.Amount.Mul(value)

	fee, err := domain.ComputeFee(converted, req.FeePolicy)
	if err != nil {
		return nil, err
	}

	net := converted.Sub(fee)
	if net.IsNegative() {
		return nil, apperrors.NewValidationError("amount",
			fmt.Sprintf("fee %s exceeds converted amount %s", fee.String(), converted.String()))
	}

	return &domain.Quote{
		RateID:          rate.RateID,
		AgentID:         rate.AgentID,
		FromCurrency:    rate.FromCurrency,
		ToCurrency:      rate.ToCurrency,
		Side:            req.Side,
		Amount:          req.Amount,
		Rate:            value,
		ConvertedAmount: converted,
		Fee:             fee,
		NetAmount:       net,
		QuotedAt:        now,
	}, nil
}

func validateQuoteRequest(req domain.QuoteRequest) error {
	fields := map[string]string{}
	if req.AgentID == "" {
		fields["agentID"] = "is required"
	}
	addPairErrors(fields, req.FromCurrency, req.ToCurrency)
	if !req.Amount.GreaterThan(decimal.Zero) {
		fields["amount"] = "must be positive"
	}
	if !req.Side.Valid() {
		fields["side"] = "must be BUY or SELL"
	}
	if err := req.FeePolicy.Validate(); err != nil {
		for k, v := range apperrors.FieldsOf(err) {
			fields[k] = v
		}
	}
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}
