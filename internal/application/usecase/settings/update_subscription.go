package settings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// UpdateSubscriptionInput records the outcome of a store purchase or restore.
type UpdateSubscriptionInput struct {
	UserID            uuid.UUID
	IsSubscribed      *bool
	HasLifetimeAccess *bool
}

// UpdateSubscriptionUseCase updates the premium flags.
type UpdateSubscriptionUseCase struct {
	settingsRepo adapter.SettingsRepository
	defaults     entity.BudgetDefaults
}

// NewUpdateSubscriptionUseCase creates a new UpdateSubscriptionUseCase instance.
func NewUpdateSubscriptionUseCase(settingsRepo adapter.SettingsRepository, defaults entity.BudgetDefaults) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}

// Execute applies the subscription flags.
func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, input UpdateSubscriptionInput) (*SettingsOutput, error) {
	s, _, err := findOrDefault(ctx, uc.settingsRepo, uc.defaults, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.IsSubscribed != nil {
		s.IsSubscribed = *input.IsSubscribed
	}
	if input.HasLifetimeAccess != nil {
		s.HasLifetimeAccess = *input.HasLifetimeAccess
	}

	s.UpdatedAt = time.Now().UTC()
	if err := uc.settingsRepo.Save(ctx, s); err != nil {
		slog.Error("Failed to save subscription", "error", err, "user_id", input.UserID)
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	slog.Info("Subscription updated",
		"user_id", input.UserID,
		"is_subscribed", s.IsSubscribed,
		"has_lifetime_access", s.HasLifetimeAccess,
	)

	return newSettingsOutput(s), nil
}
