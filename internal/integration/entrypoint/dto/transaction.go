// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-planner/backend/internal/application/usecase/transaction"
)

// DateLayout is the accepted layout for date-only request fields.
const DateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for transaction creation.
// Date accepts RFC 3339 or YYYY-MM-DD and defaults to now.
type CreateTransactionRequest struct {
	Amount    float64 `json:"amount"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Date      string  `json:"date"`
	IsExpense *bool   `json:"is_expense"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Amount    *float64 `json:"amount,omitempty"`
	Title     *string  `json:"title,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Date      *string  `json:"date,omitempty"`
	IsExpense *bool    `json:"is_expense,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction response.
type TransactionCategoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string                      `json:"id"`
	Amount    string                      `json:"amount"`
	Title     string                      `json:"title"`
	Category  TransactionCategoryResponse `json:"category"`
	Date      time.Time                   `json:"date"`
	IsExpense bool                        `json:"is_expense"`
	Type      string                      `json:"type"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// ParseDate accepts RFC 3339 timestamps or YYYY-MM-DD dates (midnight UTC).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(DateLayout, s)
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	t := txn.Transaction
	return TransactionResponse{
		ID:     t.ID.String(),
		Amount: Money(t.Amount),
		Title:  t.Title,
		Category: TransactionCategoryResponse{
			Key:   string(txn.Category.Key),
			Label: txn.Category.Label,
			Icon:  txn.Category.Icon,
			Color: txn.Category.Color,
		},
		Date:      t.Date,
		IsExpense: t.IsExpense,
		Type:      string(t.Type()),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Limit:  output.Pagination.Limit,
			Offset: output.Pagination.Offset,
			Total:  output.Pagination.Total,
		},
	}
}
