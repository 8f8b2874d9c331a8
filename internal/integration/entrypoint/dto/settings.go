package dto

import (
	"time"

	"github.com/budget-planner/backend/internal/application/usecase/settings"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents a partial settings update.
// BudgetAmount is expressed in the (new) budget period.
type UpdateSettingsRequest struct {
	BudgetPeriod           *string  `json:"budget_period,omitempty"`
	BudgetAmount           *float64 `json:"budget_amount,omitempty"`
	DailyBudgetAmount      *float64 `json:"daily_budget_amount,omitempty"`
	Currency               *string  `json:"currency,omitempty"`
	HasCompletedOnboarding *bool    `json:"has_completed_onboarding,omitempty"`
}

// UpdateSubscriptionRequest represents a change of subscription flags.
type UpdateSubscriptionRequest struct {
	IsSubscribed      *bool `json:"is_subscribed,omitempty"`
	HasLifetimeAccess *bool `json:"has_lifetime_access,omitempty"`
}

// SettingsResponse represents budget settings in API responses.
type SettingsResponse struct {
	BudgetPeriod           string    `json:"budget_period"`
	BudgetPeriodLabel      string    `json:"budget_period_label"`
	PeriodDays             int       `json:"period_days"`
	BudgetAmount           string    `json:"budget_amount"`
	DailyBudgetAmount      string    `json:"daily_budget_amount"`
	Currency               string    `json:"currency"`
	HasCompletedOnboarding bool      `json:"has_completed_onboarding"`
	IsSubscribed           bool      `json:"is_subscribed"`
	HasLifetimeAccess      bool      `json:"has_lifetime_access"`
	PremiumEnabled         bool      `json:"premium_enabled"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ResetDataResponse represents the response of a data reset.
type ResetDataResponse struct {
	DeletedTransactions int64            `json:"deleted_transactions"`
	Settings            SettingsResponse `json:"settings"`
}

// ToSettingsResponse converts domain settings to a SettingsResponse DTO.
func ToSettingsResponse(s *entity.BudgetSettings) SettingsResponse {
	return SettingsResponse{
		BudgetPeriod:           string(s.BudgetPeriod),
		BudgetPeriodLabel:      s.BudgetPeriod.DisplayName(),
		PeriodDays:             s.BudgetPeriod.DaysInPeriod(),
		BudgetAmount:           Money(s.PeriodBudget()),
		DailyBudgetAmount:      Money(s.DailyBudgetAmount),
		Currency:               s.Currency,
		HasCompletedOnboarding: s.HasCompletedOnboarding,
		IsSubscribed:           s.IsSubscribed,
		HasLifetimeAccess:      s.HasLifetimeAccess,
		PremiumEnabled:         s.PremiumEnabled(),
		UpdatedAt:              s.UpdatedAt,
	}
}

// ToSettingsOutputResponse converts a SettingsOutput to a SettingsResponse DTO.
func ToSettingsOutputResponse(output *settings.SettingsOutput) SettingsResponse {
	return ToSettingsResponse(output.Settings)
}

// ToResetDataResponse converts a ResetDataOutput to a ResetDataResponse DTO.
func ToResetDataResponse(output *settings.ResetDataOutput) ResetDataResponse {
	return ResetDataResponse{
		DeletedTransactions: output.DeletedTransactions,
		Settings:            ToSettingsOutputResponse(output.Settings),
	}
}
