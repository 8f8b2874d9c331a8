package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for budget settings persistence.
type SettingsRepository interface {
	// FindByUserID returns the user's settings or domainerror.ErrSettingsNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.BudgetSettings, error)

	// Save inserts or replaces the user's settings.
	Save(ctx context.Context, settings *entity.BudgetSettings) error
}
