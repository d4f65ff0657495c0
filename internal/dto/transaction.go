package dto

import (
	"time"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Party identifies a sender or receiver.
type Party struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (p Party) toDomain() domain.Party {
	return domain.Party{Name: p.Name, Phone: p.Phone, City: p.City, Country: p.Country}
}

// CreateTransactionRequest defines the structure for creating a new transaction.
// Party fields are checked by the ledger so every missing field is reported at once.
type CreateTransactionRequest struct {
	AgentID      string          `json:"agentID" binding:"required"`
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,alpha"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,alpha"`
	FromAmount   decimal.Decimal `json:"fromAmount" binding:"required"`
	Side         string          `json:"side" binding:"required,oneof=BUY SELL"`
	FeePolicy    *FeePolicy      `json:"feePolicy,omitempty"`
	Sender       Party           `json:"sender"`
	Receiver     Party           `json:"receiver"`
	Notes        string          `json:"notes" binding:"max=500"`
}

func (r CreateTransactionRequest) ToDomain() domain.TransactionRequest {
	return domain.TransactionRequest{
		AgentID:      r.AgentID,
		FromCurrency: r.FromCurrency,
		ToCurrency:   r.ToCurrency,
		FromAmount:   r.FromAmount,
		Side:         domain.RateSide(r.Side),
		FeePolicy:    r.FeePolicy.toDomain(),
		Sender:       r.Sender.toDomain(),
		Receiver:     r.Receiver.toDomain(),
		Notes:        r.Notes,
	}
}

// TransitionRequest moves a transaction along one edge of the state graph.
type TransitionRequest struct {
	FromExpected string `json:"fromExpected" binding:"required"`
	ToTarget     string `json:"toTarget" binding:"required"`
}

// ToDomain binds the request to the id or reference code taken from the path.
func (r TransitionRequest) ToDomain(idOrCode string) domain.TransitionRequest {
	return domain.TransitionRequest{
		IDOrCode:     idOrCode,
		FromExpected: domain.TransactionStatus(r.FromExpected),
		ToTarget:     domain.TransactionStatus(r.ToTarget),
	}
}

// TransactionResponse defines the structure for API responses containing transaction details.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	ReferenceCode string          `json:"referenceCode"`
	AgentID       string          `json:"agentID"`
	RateID        string          `json:"rateID"`
	Status        string          `json:"status"`
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	FromAmount    decimal.Decimal `json:"fromAmount"`
	ToAmount      decimal.Decimal `json:"toAmount"`
	Rate          decimal.Decimal `json:"rate"`
	RateSide      string          `json:"rateSide"`
	Fee           decimal.Decimal `json:"fee"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	Sender        Party           `json:"sender"`
	Receiver      Party           `json:"receiver"`
	Notes         string          `json:"notes,omitempty"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

func toParty(p domain.Party) Party {
	return Party{Name: p.Name, Phone: p.Phone, City: p.City, Country: p.Country}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		ReferenceCode: t.ReferenceCode,
		AgentID:       t.AgentID,
		RateID:        t.RateID,
		Status:        string(t.Status),
		FromCurrency:  t.FromCurrency,
		ToCurrency:    t.ToCurrency,
		FromAmount:    t.FromAmount,
		ToAmount:      t.ToAmount,
		Rate:          t.Rate,
		RateSide:      string(t.RateSide),
		Fee:           t.Fee,
		NetAmount:     t.NetAmount,
		Sender:        toParty(t.Sender),
		Receiver:      toParty(t.Receiver),
		Notes:         t.Notes,
		CompletedAt:   t.CompletedAt,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// TransitionResponse is returned after a successful status change.
type TransitionResponse struct {
	ReferenceCode string     `json:"referenceCode"`
	Status        string     `json:"status"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

func ToTransitionResponse(t *domain.Transaction) TransitionResponse {
	return TransitionResponse{ReferenceCode: t.ReferenceCode, Status: string(t.Status), CompletedAt: t.CompletedAt}
}

// ConflictResponse carries the stored state after a lost compare-and-set.
type ConflictResponse struct {
	Error   string              `json:"error"`
	Current TransactionResponse `json:"current"`
}

// ListTransactionsParams defines the query parameters for listing an agent's transactions.
type ListTransactionsParams struct {
	Status    string `form:"status"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

func (p ListTransactionsParams) ToDomain() domain.TransactionFilter {
	filter := domain.TransactionFilter{Limit: p.Limit, NextToken: p.NextToken}
	if p.Status != "" {
		status := domain.TransactionStatus(p.Status)
		filter.Status = &status
	}
	return filter
}

// ListTransactionsResponse is one page of transactions, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

func ToListTransactionsResponse(page *domain.TransactionPage) ListTransactionsResponse {
	out := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(page.Transactions)),
		NextToken:    page.NextToken,
	}
	for i := range page.Transactions {
		out.Transactions[i] = ToTransactionResponse(&page.Transactions[i])
	}
	return out
}
