package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// TrackingView is the public projection of a transaction.
// It deliberately omits internal ids, the agent id, phone numbers and notes.
type TrackingView struct {
	ReferenceCode   string            `json:"referenceCode"`
	Status          TransactionStatus `json:"status"`
	FromCurrency    string            `json:"fromCurrency"`
	ToCurrency      string            `json:"toCurrency"`
	FromAmount      decimal.Decimal   `json:"fromAmount"`
	ToAmount        decimal.Decimal   `json:"toAmount"`
	Fee             decimal.Decimal   `json:"fee"`
	NetAmount       decimal.Decimal   `json:"netAmount"`
	SenderName      string            `json:"senderName"`
	SenderCity      string            `json:"senderCity"`
	SenderCountry   string            `json:"senderCountry"`
	ReceiverName    string            `json:"receiverName"`
	ReceiverCity    string            `json:"receiverCity"`
	ReceiverCountry string            `json:"receiverCountry"`
	CreatedAt       time.Time         `json:"createdAt"`
	CompletedAt     *time.Time        `json:"completedAt,omitempty"`
}

// NewTrackingView sanitizes t for unauthenticated disclosure.
func NewTrackingView(t Transaction) TrackingView {
	return TrackingView{
		ReferenceCode:   t.ReferenceCode,
		Status:          t.Status,
		FromCurrency:    t.FromCurrency,
		ToCurrency:      t.ToCurrency,
		FromAmount:      t.FromAmount,
		ToAmount:        t.ToAmount,
		Fee:             t.Fee,
		NetAmount:       t.NetAmount,
		SenderName:      MaskName(t.Sender.Name),
		SenderCity:      t.Sender.City,
		SenderCountry:   t.Sender.Country,
		ReceiverName:    MaskName(t.Receiver.Name),
		ReceiverCity:    t.Receiver.City,
		ReceiverCountry: t.Receiver.Country,
		CreatedAt:       t.CreatedAt,
		CompletedAt:     t.CompletedAt,
	}
}

// MaskName keeps the first letter of every word: "Ahmad Karimi" -> "A**** K*****".
func MaskName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(r) + strings.Repeat("*", utf8.RuneCountInString(w[size:]))
	}
	return strings.Join(words, " ")
}
