// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves one page of a user's transactions, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) (*entity.TransactionListResult, error)

	// FindAllByUser retrieves every transaction of a user, newest first.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByUserInRange retrieves a user's transactions dated within [start, end], newest first.
	FindByUserInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAllByUser removes every transaction of a user and returns how many were removed.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
