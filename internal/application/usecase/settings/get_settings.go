package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// GetSettingsInput represents the input for reading settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsUseCase returns a user's settings, creating defaults on first access.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	defaults     entity.BudgetDefaults
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository, defaults entity.BudgetDefaults) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}

// Execute returns the settings, persisting the defaults if the user has none yet.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*SettingsOutput, error) {
	s, stored, err := findOrDefault(ctx, uc.settingsRepo, uc.defaults, input.UserID)
	if err != nil {
		return nil, err
	}

	if !stored {
		if err := uc.settingsRepo.Save(ctx, s); err != nil {
			return nil, err
		}
	}

	return newSettingsOutput(s), nil
}
