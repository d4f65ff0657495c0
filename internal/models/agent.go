package models

// Agent is a row of the agents table. It is written by the admin workflow only.
type Agent struct {
	AgentID      string `db:"agent_id"`
	BusinessName string `db:"business_name"`
	City         string `db:"city"`
	Country      string `db:"country"`
	Status       string `db:"status"` // PENDING, APPROVED, REJECTED or SUSPENDED
	IsActive     bool   `db:"is_active"`
	AuditFields
}
