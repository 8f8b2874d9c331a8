package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// ResetDataInput represents the input for wiping a user's budget data.
type ResetDataInput struct {
	UserID uuid.UUID
}

// ResetDataOutput represents the output of a reset.
type ResetDataOutput struct {
	DeletedTransactions int64
	Settings            *SettingsOutput
}

// ResetDataUseCase deletes every transaction and restores default settings.
type ResetDataUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
	defaults        entity.BudgetDefaults
}

// NewResetDataUseCase creates a new ResetDataUseCase instance.
func NewResetDataUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	defaults entity.BudgetDefaults,
) *ResetDataUseCase {
	return &ResetDataUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
		defaults:        defaults,
	}
}

// Execute performs the reset. Onboarding state survives it.
func (uc *ResetDataUseCase) Execute(ctx context.Context, input ResetDataInput) (*ResetDataOutput, error) {
	deleted, err := uc.transactionRepo.DeleteAllByUser(ctx, input.UserID)
	if err != nil {
		slog.Error("Failed to delete transactions", "error", err, "user_id", input.UserID)
		return nil, fmt.Errorf("failed to delete transactions: %w", err)
	}

	s, _, err := findOrDefault(ctx, uc.settingsRepo, uc.defaults, input.UserID)
	if err != nil {
		return nil, err
	}
	s.ResetToDefaults(uc.defaults)

	if err := uc.settingsRepo.Save(ctx, s); err != nil {
		slog.Error("Failed to reset settings", "error", err, "user_id", input.UserID)
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	slog.Info("User data reset", "user_id", input.UserID, "deleted_transactions", deleted)

	return &ResetDataOutput{
		DeletedTransactions: deleted,
		Settings:            newSettingsOutput(s),
	}, nil
}
