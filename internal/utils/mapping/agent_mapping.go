package mapping

import (
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/models"
)

// ToDomainAgent converts a model Agent to a domain Agent
func ToDomainAgent(m models.Agent) domain.Agent {
	return domain.Agent{
		AgentID:      m.AgentID,
		BusinessName: m.BusinessName,
		City:         m.City,
		Country:      m.Country,
		Status:       domain.AgentStatus(m.Status),
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
