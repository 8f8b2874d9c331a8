package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID    uuid.UUID
	Amount    float64
	Title     string
	Category  string
	Date      time.Time
	IsExpense bool
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	taxonomy        *entity.Taxonomy
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	taxonomy *entity.Taxonomy,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		taxonomy:        taxonomy,
	}
}

// Execute performs the transaction creation. A zero date means now.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Amount,
		title,
		normalizeCategory(uc.taxonomy, input.Category),
		date,
		input.IsExpense,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		slog.Error("Failed to create transaction", "error", err, "user_id", input.UserID)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: newTransactionOutput(uc.taxonomy, transaction),
	}, nil
}
