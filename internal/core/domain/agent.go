package domain

// AgentStatus is the approval state assigned by the external admin workflow.
type AgentStatus string

const (
	AgentPending   AgentStatus = "PENDING"
	AgentApproved  AgentStatus = "APPROVED"
	AgentRejected  AgentStatus = "REJECTED"
	AgentSuspended AgentStatus = "SUSPENDED"
)

// Agent is a money-exchange business publishing rates and settling transfers.
// The settlement core never writes agents; it only reads the approval and active flags.
type Agent struct {
	AgentID      string      `json:"agentID"`
	BusinessName string      `json:"businessName"`
	City         string      `json:"city"`
	Country      string      `json:"country"`
	Status       AgentStatus `json:"status"`
	IsActive     bool        `json:"isActive"`
	AuditFields
}

// CanTransact reports whether the agent may publish rates and record transfers.
func (a Agent) CanTransact() bool {
	return a.IsActive && a.Status == AgentApproved
}

// Actor is the authenticated principal supplied by the identity provider.
type Actor struct {
	UserID  string
	AgentID string // empty for principals that are not bound to an agent
	IsAdmin bool
}

// CanActFor reports whether the actor owns agentID or holds administrative rights.
func (a Actor) CanActFor(agentID string) bool {
	if a.IsAdmin {
		return true
	}
	return a.AgentID != "" && a.AgentID == agentID
}
