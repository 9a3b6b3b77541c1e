package dto

import (
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Type     domain.FlowType `json:"type" binding:"required,oneof=inflow outflow" example:"outflow"`
	Amount   decimal.Decimal `json:"amount" binding:"positivedecimal" swaggertype:"string" example:"25000"`
	Category string          `json:"category" binding:"required,max=64" example:"makan"`
	Date     string          `json:"date" binding:"required,calendardate" example:"2024-01-02"`
	Note     string          `json:"note" binding:"max=200" example:"Bakso Cak Man"` // Optional, defaults to the category
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          domain.FlowType `json:"type"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"categoryLabel"`
	CategoryIcon  string          `json:"categoryIcon"`
	Date          string          `json:"date"`
	Note          string          `json:"note"`
}

// CreateTransactionResponse is returned after recording a transaction.
type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Nudge       string              `json:"nudge,omitempty"` // Set when ngirit mode flags a large expense
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// RecentTransactionsParams defines query parameters for the recent list.
type RecentTransactionsParams struct {
	Limit int `form:"limit,default=5" binding:"min=1,max=50"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	cat := domain.LookupCategory(t.Category, t.Type)
	return TransactionResponse{
		ID:            t.ID,
		Type:          t.Type,
		Amount:        t.Amount,
		Category:      t.Category,
		CategoryLabel: cat.Label,
		CategoryIcon:  cat.Icon,
		Date:          t.Date,
		Note:          t.Note,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(t)
	}
	return res
}
