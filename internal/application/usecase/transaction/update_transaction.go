package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// UpdateTransactionInput represents a partial transaction update. Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Amount        *float64
	Title         *string
	Category      *string
	Date          *time.Time
	IsExpense     *bool
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	taxonomy        *entity.Taxonomy
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, taxonomy *entity.Taxonomy) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		taxonomy:        taxonomy,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	// Other users' transactions are reported as missing.
	if transaction.UserID != input.UserID {
		return nil, notFoundError()
	}

	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		transaction.Title = title
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		transaction.Amount = *input.Amount
	}
	if input.Category != nil {
		transaction.Category = normalizeCategory(uc.taxonomy, *input.Category)
	}
	if input.Date != nil && !input.Date.IsZero() {
		transaction.Date = *input.Date
	}
	if input.IsExpense != nil {
		transaction.IsExpense = *input.IsExpense
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: newTransactionOutput(uc.taxonomy, transaction),
	}, nil
}
