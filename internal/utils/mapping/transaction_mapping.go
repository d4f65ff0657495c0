package mapping

import (
	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/SscSPs/hawala_settlement/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		ReferenceCode:   d.ReferenceCode,
		AgentID:         d.AgentID,
		RateID:          d.RateID,
		Status:          string(d.Status),
		FromCurrency:    d.FromCurrency,
		ToCurrency:      d.ToCurrency,
		FromAmount:      d.FromAmount,
		ToAmount:        d.ToAmount,
		Rate:            d.Rate,
		RateSide:        string(d.RateSide),
		Fee:             d.Fee,
		NetAmount:       d.NetAmount,
		SenderName:      d.Sender.Name,
		SenderPhone:     d.Sender.Phone,
		SenderCity:      d.Sender.City,
		SenderCountry:   d.Sender.Country,
		ReceiverName:    d.Receiver.Name,
		ReceiverPhone:   d.Receiver.Phone,
		ReceiverCity:    d.Receiver.City,
		ReceiverCountry: d.Receiver.Country,
		Notes:           d.Notes,
		CompletedAt:     d.CompletedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ReferenceCode: m.ReferenceCode,
		AgentID:       m.AgentID,
		RateID:        m.RateID,
		Status:        domain.TransactionStatus(m.Status),
		FromCurrency:  m.FromCurrency,
		ToCurrency:    m.ToCurrency,
		FromAmount:    m.FromAmount,
		ToAmount:      m.ToAmount,
		Rate:          m.Rate,
		RateSide:      domain.RateSide(m.RateSide),
		Fee:           m.Fee,
		NetAmount:     m.NetAmount,
		Sender: domain.Party{
			Name:    m.SenderName,
			Phone:   m.SenderPhone,
			City:    m.SenderCity,
			Country: m.SenderCountry,
		},
		Receiver: domain.Party{
			Name:    m.ReceiverName,
			Phone:   m.ReceiverPhone,
			City:    m.ReceiverCity,
			Country: m.ReceiverCountry,
		},
		Notes:       m.Notes,
		CompletedAt: m.CompletedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
