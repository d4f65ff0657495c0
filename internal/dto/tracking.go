package dto

import (
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrackingResponse is the public status of a transfer. It never carries
// internal ids, phone numbers or notes.
type TrackingResponse struct {
	ReferenceCode   string          `json:"referenceCode"`
	Status          string          `json:"status"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	FromAmount      decimal.Decimal `json:"fromAmount"`
	ToAmount        decimal.Decimal `json:"toAmount"`
	Fee             decimal.Decimal `json:"fee"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	SenderName      string          `json:"senderName"`
	SenderCity      string          `json:"senderCity"`
	SenderCountry   string          `json:"senderCountry"`
	ReceiverName    string          `json:"receiverName"`
	ReceiverCity    string          `json:"receiverCity"`
	ReceiverCountry string          `json:"receiverCountry"`
	CreatedAt       time.Time       `json:"createdAt"`
	CompletedAt     *time.Time      `json:"completedAt,omitempty"`
}

func ToTrackingResponse(v *domain.TrackingView) TrackingResponse {
	return TrackingResponse{
		ReferenceCode:   v.ReferenceCode,
		Status:          string(v.Status),
		FromCurrency:    v.FromCurrency,
		ToCurrency:      v.ToCurrency,
		FromAmount:      v.FromAmount,
		ToAmount:        v.ToAmount,
		Fee:             v.Fee,
		NetAmount:       v.NetAmount,
		SenderName:      v.SenderName,
		SenderCity:      v.SenderCity,
		SenderCountry:   v.SenderCountry,
		ReceiverName:    v.ReceiverName,
		ReceiverCity:    v.ReceiverCity,
		ReceiverCountry: v.ReceiverCountry,
		CreatedAt:       v.CreatedAt,
		CompletedAt:     v.CompletedAt,
	}
}
