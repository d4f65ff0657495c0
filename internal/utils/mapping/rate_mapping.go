package mapping

import (
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate
func ToModelRate(d domain.Rate) models.Rate {
	return models.Rate{
		RateID:       d.RateID,
		AgentID:      d.AgentID,
		FromCurrency: d.FromCurrency,
		ToCurrency:   d.ToCurrency,
		BuyRate:      d.BuyRate,
		SellRate:     d.SellRate,
		IsActive:     d.IsActive,
		ValidUntil:   d.ValidUntil,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRate converts a model Rate to a domain Rate
func ToDomainRate(m models.Rate) domain.Rate {
	return domain.Rate{
		RateID:       m.RateID,
		AgentID:      m.AgentID,
		FromCurrency: m.FromCurrency,
		ToCurrency:   m.ToCurrency,
		BuyRate:      m.BuyRate,
		SellRate:     m.SellRate,
		IsActive:     m.IsActive,
		ValidUntil:   m.ValidUntil,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRateSlice converts a slice of model Rates to domain Rates
func ToDomainRateSlice(ms []models.Rate) []domain.Rate {
	out := make([]domain.Rate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainRate(m)
	}
	return out
}
