package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/hawala_settlement/internal/apperrors"
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/core/ports"
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/SscSPs/hawala_settlement/internal/platform/metrics"
	"github.com/SscSPs/hawala_settlement/internal/utils/refcode"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultMaxCodeAttempts = 5
	DefaultPageSize        = 20
	MaxPageSize            = 100
)

// ReferenceCodeGenerator produces candidate reference codes.
type ReferenceCodeGenerator interface {
	Generate() (string, error)
}

// transactionService is the hawala ledger: it freezes quotes into transactions
// and moves them through the status graph.
type transactionService struct {
	BaseService
	txnRepo         portsrepo.TransactionRepositoryWithTx
	quotes          portssvc.QuoteSvc
	codes           ReferenceCodeGenerator
	stateMachine    domain.StateMachine
	publisher       ports.TransactionEventPublisher
	trackingCache   ports.TrackingCache
	maxCodeAttempts int
	defaultFee      domain.FeePolicy
	clock           domain.Clock
	newID           func() string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionAgentReader enables the agent approval check.
func WithTransactionAgentReader(agents portsrepo.AgentReader) TransactionServiceOption {
	return func(s *transactionService) {
		s.AgentReader = agents
	}
}

// WithStateMachine replaces the default status graph.
func WithStateMachine(m domain.StateMachine) TransactionServiceOption {
	return func(s *transactionService) {
		s.stateMachine = m
	}
}

// WithEventPublisher installs the post-commit notification hook.
func WithEventPublisher(p ports.TransactionEventPublisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.publisher = p
	}
}

// WithTrackingCache lets transitions drop stale public tracking entries.
func WithTrackingCache(c ports.TrackingCache) TransactionServiceOption {
	return func(s *transactionService) {
		s.trackingCache = c
	}
}

// WithMaxCodeAttempts bounds reference code retries. Values below 1 are ignored.
func WithMaxCodeAttempts(n int) TransactionServiceOption {
	return func(s *transactionService) {
		if n > 0 {
			s.maxCodeAttempts = n
		}
	}
}

// WithDefaultFeePolicy is applied to requests that carry no fee policy.
func WithDefaultFeePolicy(p domain.FeePolicy) TransactionServiceOption {
	return func(s *transactionService) {
		s.defaultFee = p
	}
}

func WithTransactionClock(clock domain.Clock) TransactionServiceOption {
	return func(s *transactionService) {
		s.clock = clock
	}
}

// WithIDGenerator overrides uuid.NewString for internal transaction ids.
func WithIDGenerator(newID func() string) TransactionServiceOption {
	return func(s *transactionService) {
		s.newID = newID
	}
}

// NewTransactionService creates the ledger with the provided options
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryWithTx,
	quotes portssvc.QuoteSvc,
	codes ReferenceCodeGenerator,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:         txnRepo,
		quotes:          quotes,
		codes:           codes,
		stateMachine:    domain.DefaultStateMachine,
		maxCodeAttempts: DefaultMaxCodeAttempts,
		clock:           domain.SystemClock,
		newID:           uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, actor domain.Actor, req domain.TransactionRequest) (*domain.Transaction, error) {
	req = s.normalizeRequest(req)
	if err := validateTransactionRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.AuthorizeAgentMutation(ctx, actor, req.AgentID, true); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= s.maxCodeAttempts; attempt++ {
		txn, err := s.createOnce(ctx, actor, req)
		if err == nil {
			metrics.TransactionsCreated.WithLabelValues(txn.FromCurrency, txn.ToCurrency).Inc()
			s.LogInfo(ctx, "Transaction created",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("reference_code", txn.ReferenceCode),
				slog.String("agent_id", txn.AgentID),
				slog.Int("attempt", attempt))
			s.publish(ctx, domain.NewCreatedEvent(*txn, actor, txn.CreatedAt))
			return txn, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		metrics.ReferenceCodeCollisions.Inc()
		s.LogWarn(ctx, "Reference code collision, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", s.maxCodeAttempts))
	}

	err := apperrors.NewAppError(http.StatusInternalServerError,
		fmt.Sprintf("no unique reference code after %d attempts", s.maxCodeAttempts),
		apperrors.ErrCodeGenerationExhausted)
	s.LogError(ctx, err, "Reference code generation exhausted",
		slog.String("agent_id", req.AgentID),
		slog.Int("max_attempts", s.maxCodeAttempts))
	return nil, err
}

// createOnce runs one quote, code and insert attempt inside a single database transaction.
func (s *transactionService) createOnce(ctx context.Context, actor domain.Actor, req domain.TransactionRequest) (*domain.Transaction, error) {
	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, apperrors.NewInternalServerError("failed to begin transaction", err)
	}
	defer func() {
		_ = s.txnRepo.Rollback(ctx, tx)
	}()

	quote, err := s.quotes.QuoteTx(ctx, tx, domain.QuoteRequest{
		AgentID:      req.AgentID,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Amount:       req.FromAmount,
		Side:         req.Side,
		FeePolicy:    *req.FeePolicy,
	})
	if err != nil {
		return nil, err
	}

	code, err := s.codes.Generate()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate reference code")
		return nil, apperrors.NewInternalServerError("failed to generate reference code", err)
	}

	txn := domain.NewTransactionFromQuote(s.newID(), code, *quote,
		req.Sender, req.Receiver, req.Notes, actor.UserID, s.clock())

	if err := s.txnRepo.InsertTransactionTx(ctx, tx, txn); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to insert transaction", slog.String("reference_code", code))
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transaction", slog.String("reference_code", code))
		return nil, apperrors.NewInternalServerError("failed to commit transaction", err)
	}
	return &txn, nil
}

func (s *transactionService) TransitionTransaction(ctx context.Context, actor domain.Actor, req domain.TransitionRequest) (*domain.Transaction, error) {
	if err := validateTransitionRequest(req); err != nil {
		return nil, err
	}
	// Edges outside the graph are rejected before any read, so no stored state is returned.
	if !s.stateMachine.CanTransition(req.FromExpected, req.ToTarget) {
		metrics.TransitionsTotal.WithLabelValues(string(req.FromExpected), string(req.ToTarget), metrics.ResultInvalid).Inc()
		return nil, apperrors.NewInvalidTransitionError(string(req.FromExpected), string(req.ToTarget))
	}

	current, err := s.find(ctx, req.IDOrCode)
	if err != nil {
		return nil, err
	}

	if _, err := s.AuthorizeAgentMutation(ctx, actor, current.AgentID, false); err != nil {
		return nil, err
	}

	if current.Status != req.FromExpected {
		return s.conflict(ctx, req, current)
	}

	now := s.clock()
	var completedAt *time.Time
	if req.ToTarget == domain.StatusCompleted {
		completedAt = &now
	}

	updated, err := s.txnRepo.CompareAndSetStatus(ctx, current.TransactionID,
		req.FromExpected, req.ToTarget, completedAt, actor.UserID, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			latest, findErr := s.txnRepo.FindTransactionByID(ctx, current.TransactionID)
			if findErr != nil {
				s.LogError(ctx, findErr, "Failed to re-read transaction after conflict",
					slog.String("transaction_id", current.TransactionID))
				return nil, fmt.Errorf("failed to re-read transaction: %w", findErr)
			}
			return s.conflict(ctx, req, latest)
		}
		s.LogError(ctx, err, "Failed to update transaction status",
			slog.String("transaction_id", current.TransactionID))
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	metrics.TransitionsTotal.WithLabelValues(string(req.FromExpected), string(req.ToTarget), metrics.ResultSuccess).Inc()
	s.LogInfo(ctx, "Transaction transitioned",
		slog.String("transaction_id", updated.TransactionID),
		slog.String("reference_code", updated.ReferenceCode),
		slog.String("from", string(req.FromExpected)),
		slog.String("to", string(updated.Status)))

	s.invalidateTracking(ctx, updated.ReferenceCode)
	s.publish(ctx, domain.NewTransitionedEvent(*updated, req.FromExpected, actor, now))
	return updated, nil
}

// conflict returns the stored state alongside ErrConflict so the caller can re-read and retry.
func (s *transactionService) conflict(ctx context.Context, req domain.TransitionRequest, stored *domain.Transaction) (*domain.Transaction, error) {
	metrics.TransitionsTotal.WithLabelValues(string(req.FromExpected), string(req.ToTarget), metrics.ResultConflict).Inc()
	s.LogInfo(ctx, "Transition lost to a concurrent update",
		slog.String("transaction_id", stored.TransactionID),
		slog.String("expected", string(req.FromExpected)),
		slog.String("actual", string(stored.Status)))
	return stored, apperrors.NewConflictError(fmt.Sprintf(
		"transaction is %s, expected %s", stored.Status, req.FromExpected))
}

func (s *transactionService) GetTransaction(ctx context.Context, actor domain.Actor, idOrCode string) (*domain.Transaction, error) {
	if strings.TrimSpace(idOrCode) == "" {
		return nil, apperrors.NewValidationError("idOrCode", "is required")
	}
	txn, err := s.find(ctx, idOrCode)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, actor, txn.AgentID); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListAgentTransactions(ctx context.Context, actor domain.Actor, agentID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	if agentID == "" {
		return nil, apperrors.NewValidationError("agentID", "is required")
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.NewValidationError("status", "unknown status "+string(*filter.Status))
	}
	if err := s.AuthorizeOwner(ctx, actor, agentID); err != nil {
		return nil, err
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultPageSize
	case filter.Limit > MaxPageSize:
		filter.Limit = MaxPageSize
	}

	page, err := s.txnRepo.ListTransactionsByAgent(ctx, agentID, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to list transactions", slog.String("agent_id", agentID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return page, nil
}

// find resolves a UUID against the internal id and anything else against the reference code.
func (s *transactionService) find(ctx context.Context, idOrCode string) (*domain.Transaction, error) {
	var (
		txn *domain.Transaction
		err error
	)
	if _, parseErr := uuid.Parse(idOrCode); parseErr == nil {
		txn, err = s.txnRepo.FindTransactionByID(ctx, idOrCode)
	} else {
		txn, err = s.txnRepo.FindTransactionByReferenceCode(ctx, refcode.Normalize(idOrCode))
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		s.LogError(ctx, err, "Failed to load transaction")
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) publish(ctx context.Context, event domain.TransactionEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish transaction event",
			slog.String("event_type", string(event.Type)),
			slog.String("transaction_id", event.TransactionID))
	}
}

func (s *transactionService) invalidateTracking(ctx context.Context, code string) {
	if s.trackingCache == nil {
		return
	}
	if err := s.trackingCache.Invalidate(ctx, code); err != nil {
		s.LogWarn(ctx, "Failed to invalidate tracking cache",
			slog.String("reference_code", code),
			slog.String("error", err.Error()))
	}
}

func (s *transactionService) normalizeRequest(req domain.TransactionRequest) domain.TransactionRequest {
	req.FromCurrency = domain.NormalizeCurrencyCode(req.FromCurrency)
	req.ToCurrency = domain.NormalizeCurrencyCode(req.ToCurrency)
	req.Sender = trimParty(req.Sender)
	req.Receiver = trimParty(req.Receiver)
	req.Notes = strings.TrimSpace(req.Notes)
	if req.FeePolicy == nil {
		policy := s.defaultFee
		req.FeePolicy = &policy
	}
	return req
}

func trimParty(p domain.Party) domain.Party {
	return domain.Party{
		Name:    strings.TrimSpace(p.Name),
		Phone:   strings.TrimSpace(p.Phone),
		City:    strings.TrimSpace(p.City),
		Country: strings.TrimSpace(p.Country),
	}
}

func validateTransactionRequest(req domain.TransactionRequest) error {
	fields := map[string]string{}
	if req.AgentID == "" {
		fields["agentID"] = "is required"
	}
	addPairErrors(fields, req.FromCurrency, req.ToCurrency)
	if !req.FromAmount.GreaterThan(decimal.Zero) {
		fields["fromAmount"] = "must be positive"
	}
	if !req.Side.Valid() {
		fields["side"] = "must be BUY or SELL"
	}
	for k, v := range apperrors.FieldsOf(req.FeePolicy.Validate()) { // normalized to non-nil
		fields[k] = v
	}
	addPartyErrors(fields, "sender", req.Sender)
	addPartyErrors(fields, "receiver", req.Receiver)
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}

func addPartyErrors(fields map[string]string, prefix string, p domain.Party) {
	if p.Name == "" {
		fields[prefix+".name"] = "is required"
	}
	if p.Phone == "" {
		fields[prefix+".phone"] = "is required"
	}
	if p.City == "" {
		fields[prefix+".city"] = "is required"
	}
	if p.Country == "" {
		fields[prefix+".country"] = "is required"
	}
}

func validateTransitionRequest(req domain.TransitionRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(req.IDOrCode) == "" {
		fields["idOrCode"] = "is required"
	}
	if !req.FromExpected.Valid() {
		fields["fromExpected"] = "unknown status"
	}
	if !req.ToTarget.Valid() {
		fields["toTarget"] = "unknown status"
	}
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError(fields)
	}
	return nil
}
