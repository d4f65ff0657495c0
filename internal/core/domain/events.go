package domain

import "time"

// TransactionEventType names the lifecycle change a TransactionEvent reports.
type TransactionEventType string

const (
	EventTransactionCreated      TransactionEventType = "transaction.created"
	EventTransactionTransitioned TransactionEventType = "transaction.transitioned"
)

// TransactionEvent is handed to the optional notification hook after a commit.
type TransactionEvent struct {
	Type           TransactionEventType `json:"type"`
	TransactionID  string               `json:"transactionID"`
	ReferenceCode  string               `json:"referenceCode"`
	AgentID        string               `json:"agentID"`
	PreviousStatus TransactionStatus    `json:"previousStatus,omitempty"`
	Status         TransactionStatus    `json:"status"`
	ActorUserID    string               `json:"actorUserID"`
	OccurredAt     time.Time            `json:"occurredAt"`
}

// NewCreatedEvent describes a freshly committed transaction.
func NewCreatedEvent(t Transaction, actor Actor, at time.Time) TransactionEvent {
	return TransactionEvent{
		Type:          EventTransactionCreated,
		TransactionID: t.TransactionID,
		ReferenceCode: t.ReferenceCode,
		AgentID:       t.AgentID,
		Status:        t.Status,
		ActorUserID:   actor.UserID,
		OccurredAt:    at,
	}
}

// NewTransitionedEvent describes a successful status change.
func NewTransitionedEvent(t Transaction, previous TransactionStatus, actor Actor, at time.Time) TransactionEvent {
	return TransactionEvent{
		Type:           EventTransactionTransitioned,
		TransactionID:  t.TransactionID,
		ReferenceCode:  t.ReferenceCode,
		AgentID:        t.AgentID,
		PreviousStatus: previous,
		Status:         t.Status,
		ActorUserID:    actor.UserID,
		OccurredAt:     at,
	}
}
