package settings

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// UpdateSettingsInput represents a partial settings update. Nil fields are left unchanged.
// BudgetAmount is expressed in the (possibly new) budget period; DailyBudgetAmount sets the
// rate directly and wins when both are given.
type UpdateSettingsInput struct {
	UserID                 uuid.UUID
	BudgetPeriod           *string
	BudgetAmount           *float64
	DailyBudgetAmount      *float64
	Currency               *string
	HasCompletedOnboarding *bool
}

// UpdateSettingsUseCase handles budget settings changes.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	defaults     entity.BudgetDefaults
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository, defaults entity.BudgetDefaults) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}

// Execute validates and applies the update. Switching period keeps the daily rate,
// so the period budget scales with the new period length.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*SettingsOutput, error) {
	s, _, err := findOrDefault(ctx, uc.settingsRepo, uc.defaults, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.BudgetPeriod != nil {
		period, ok := entity.ParseBudgetPeriod(*input.BudgetPeriod)
		if !ok {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				domainerror.ErrInvalidBudgetPeriod.Error(),
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		s.BudgetPeriod = period
	}

	if input.BudgetAmount != nil {
		if !validAmount(*input.BudgetAmount) {
			return nil, invalidAmountError()
		}
		s.SetPeriodBudget(*input.BudgetAmount)
	}

	if input.DailyBudgetAmount != nil {
		if !validAmount(*input.DailyBudgetAmount) {
			return nil, invalidAmountError()
		}
		s.DailyBudgetAmount = *input.DailyBudgetAmount
	}

	if input.Currency != nil {
		code, ok := normalizeCurrency(*input.Currency)
		if !ok {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidCurrency,
				domainerror.ErrInvalidCurrency.Error(),
				domainerror.ErrInvalidCurrency,
			)
		}
		s.Currency = code
	}

	if input.HasCompletedOnboarding != nil {
		s.HasCompletedOnboarding = *input.HasCompletedOnboarding
	}

	s.UpdatedAt = time.Now().UTC()
	if err := uc.settingsRepo.Save(ctx, s); err != nil {
		slog.Error("Failed to save settings", "error", err, "user_id", input.UserID)
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return newSettingsOutput(s), nil
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func invalidAmountError() error {
	return domainerror.NewSettingsError(
		domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrInvalidBudgetAmount.Error(),
		domainerror.ErrInvalidBudgetAmount,
	)
}
