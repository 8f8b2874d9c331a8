// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the cash-flow direction of a transaction.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a logged income or expense.
// Amount is always a non-negative magnitude; the direction is carried by IsExpense.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    float64
	Title     string
	Category  string // raw key, resolved through a Taxonomy at read time
	Date      time.Time
	IsExpense bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	amount float64,
	title string,
	category string,
	date time.Time,
	isExpense bool,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Title:     title,
		Category:  category,
		Date:      date,
		IsExpense: isExpense,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Type returns the transaction direction as a TransactionType.
func (t *Transaction) Type() TransactionType {
	if t.IsExpense {
		return TransactionTypeExpense
	}
	return TransactionTypeIncome
}

// TransactionFilter holds the optional criteria for listing transactions.
type TransactionFilter struct {
	Category  string
	Type      TransactionType
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// TransactionListResult represents one page of transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Limit        int
	Offset       int
}
