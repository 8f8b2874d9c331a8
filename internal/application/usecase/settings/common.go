// Package settings contains budget settings and account data use cases.
package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// SettingsOutput represents the budget settings returned to callers.
type SettingsOutput struct {
	Settings     *entity.BudgetSettings
	PeriodBudget float64
	PeriodDays   int
}

func newSettingsOutput(s *entity.BudgetSettings) *SettingsOutput {
	return &SettingsOutput{
		Settings:     s,
		PeriodBudget: s.PeriodBudget(),
		PeriodDays:   s.BudgetPeriod.DaysInPeriod(),
	}
}

// findOrDefault returns the stored settings, or fresh default settings when none exist.
// The second return value reports whether the settings were already stored.
func findOrDefault(
	ctx context.Context,
	repo adapter.SettingsRepository,
	defaults entity.BudgetDefaults,
	userID uuid.UUID,
) (*entity.BudgetSettings, bool, error) {
	s, err := repo.FindByUserID(ctx, userID)
	if errors.Is(err, domainerror.ErrSettingsNotFound) {
		return defaults.NewSettings(userID), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, true, nil
}

// normalizeCurrency upper-cases an ISO 4217 currency code and rejects unknown ones.
func normalizeCurrency(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		return "", false
	}
	return code, true
}
