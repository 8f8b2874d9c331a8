// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Category holds the raw key as submitted; it is resolved against the taxonomy on read.
type TransactionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_date,priority:1"`
	Date      time.Time       `gorm:"not null;index:idx_transactions_user_date,priority:2"`
	Title     string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(50);not null;default:'other';index"`
	IsExpense bool            `gorm:"not null;default:true;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount.InexactFloat64(),
		Title:     m.Title,
		Category:  m.Category,
		Date:      m.Date.UTC(),
		IsExpense: m.IsExpense,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
// Amounts are rounded to cents to match the column scale.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:        transaction.ID,
		UserID:    transaction.UserID,
		Date:      transaction.Date.UTC(),
		Title:     transaction.Title,
		Amount:    decimal.NewFromFloat(transaction.Amount).Round(2),
		Category:  transaction.Category,
		IsExpense: transaction.IsExpense,
		CreatedAt: transaction.CreatedAt,
		UpdatedAt: transaction.UpdatedAt,
	}
}
