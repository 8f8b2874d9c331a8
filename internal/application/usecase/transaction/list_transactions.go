package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

const (
	// DefaultListLimit is the page size when none is given.
	DefaultListLimit = 50
	// MaxListLimit caps the page size.
	MaxListLimit = 100
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	Category  string
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Limit  int
	Offset int
	Total  int64
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	taxonomy        *entity.Taxonomy
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, taxonomy *entity.Taxonomy) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		taxonomy:        taxonomy,
	}
}

// Execute performs the transaction listing, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	limit := input.Limit
	if limit < 1 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	filter := entity.TransactionFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Limit:     limit,
		Offset:    offset,
	}

	if input.Type != "" {
		txType := entity.TransactionType(input.Type)
		if txType != entity.TransactionTypeExpense && txType != entity.TransactionTypeIncome {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		filter.Type = txType
	}

	if input.Category != "" {
		filter.Category = string(uc.taxonomy.Resolve(input.Category))
	}

	result, err := uc.transactionRepo.FindByUser(ctx, input.UserID, filter)
	if err != nil {
		return nil, err
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(result.Transactions)),
		Pagination: PaginationOutput{
			Limit:  result.Limit,
			Offset: result.Offset,
			Total:  result.Total,
		},
	}
	for i, t := range result.Transactions {
		output.Transactions[i] = newTransactionOutput(uc.taxonomy, t)
	}

	return output, nil
}
