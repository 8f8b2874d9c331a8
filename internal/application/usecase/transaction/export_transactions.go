package transaction

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
)

// ExportTransactionsInput represents the input for exporting transactions.
type ExportTransactionsInput struct {
	UserID uuid.UUID
}

// ExportTransactionsOutput carries the encoded export file.
type ExportTransactionsOutput struct {
	Filename    string
	ContentType string
	Data        []byte
	Count       int
}

// ExportTransactionsUseCase encodes every transaction of a user, newest first.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	codec           adapter.TransactionCodec
	now             func() time.Time
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository, codec adapter.TransactionCodec) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
		codec:           codec,
		now:             time.Now,
	}
}

// Execute performs the export.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAllByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	var buf bytes.Buffer
	if err := uc.codec.Encode(&buf, transactions); err != nil {
		slog.Error("Failed to encode transactions", "error", err, "user_id", input.UserID)
		return nil, fmt.Errorf("failed to encode transactions: %w", err)
	}

	return &ExportTransactionsOutput{
		Filename:    fmt.Sprintf("transactions-%s.%s", uc.now().UTC().Format("2006-01-02"), uc.codec.FileExtension()),
		ContentType: uc.codec.ContentType(),
		Data:        buf.Bytes(),
		Count:       len(transactions),
	}, nil
}
