package services

import (
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/core/ports"
	portsrepo "github.com/SscSPs/hawala_settlement/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/SscSPs/hawala_settlement/internal/platform/config"
	"github.com/SscSPs/hawala_settlement/internal/utils/refcode"
)

// Collaborators groups the non-relational dependencies of the services.
// Publisher and TrackingCache may be nil.
type Collaborators struct {
	Codes         *refcode.Generator
	Publisher     ports.TransactionEventPublisher
	TrackingCache ports.TrackingCache
	Clock         domain.Clock
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps Collaborators) *portssvc.ServiceContainer {
	clock := deps.Clock
	if clock == nil {
		clock = domain.SystemClock
	}

	container := &portssvc.ServiceContainer{}

	container.Rate = NewRateService(
		repos.RateRepo,
		WithRateAgentReader(repos.AgentRepo),
		WithRateClock(clock),
	)

	container.Quote = NewQuoteService(repos.RateRepo, clock)

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		container.Quote,
		deps.Codes,
		WithTransactionAgentReader(repos.AgentRepo),
		WithStateMachine(domain.NewStateMachine(cfg.EnableWithdrawnState)),
		WithMaxCodeAttempts(cfg.ReferenceCodeMaxAttempts),
		WithDefaultFeePolicy(cfg.DefaultFeePolicy()),
		WithEventPublisher(deps.Publisher),
		WithTrackingCache(deps.TrackingCache),
		WithTransactionClock(clock),
	)

	container.Tracking = NewTrackingService(repos.TransactionRepo, deps.Codes, deps.TrackingCache)

	return container
}
