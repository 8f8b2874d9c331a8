package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// BudgetSettingsModel represents the budget_settings table, one row per user.
type BudgetSettingsModel struct {
	UserID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DailyBudgetAmount      decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	BudgetPeriod           string          `gorm:"type:varchar(10);not null;default:'monthly'"`
	Currency               string          `gorm:"type:varchar(3);not null;default:'USD'"`
	HasCompletedOnboarding bool            `gorm:"not null;default:false"`
	IsSubscribed           bool            `gorm:"not null;default:false"`
	HasLifetimeAccess      bool            `gorm:"not null;default:false"`
	CreatedAt              time.Time       `gorm:"not null"`
	UpdatedAt              time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetSettingsModel.
func (BudgetSettingsModel) TableName() string {
	return "budget_settings"
}

// ToEntity converts a BudgetSettingsModel to a domain BudgetSettings entity.
// An unknown stored period falls back to the default.
func (m *BudgetSettingsModel) ToEntity() *entity.BudgetSettings {
	period, ok := entity.ParseBudgetPeriod(m.BudgetPeriod)
	if !ok {
		period = entity.DefaultBudgetPeriod
	}
	return &entity.BudgetSettings{
		UserID:                 m.UserID,
		DailyBudgetAmount:      m.DailyBudgetAmount.InexactFloat64(),
		BudgetPeriod:           period,
		Currency:               m.Currency,
		HasCompletedOnboarding: m.HasCompletedOnboarding,
		IsSubscribed:           m.IsSubscribed,
		HasLifetimeAccess:      m.HasLifetimeAccess,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// SettingsFromEntity creates a BudgetSettingsModel from a domain BudgetSettings entity.
func SettingsFromEntity(settings *entity.BudgetSettings) *BudgetSettingsModel {
	return &BudgetSettingsModel{
		UserID:                 settings.UserID,
		DailyBudgetAmount:      decimal.NewFromFloat(settings.DailyBudgetAmount).Round(4),
		BudgetPeriod:           string(settings.BudgetPeriod),
		Currency:               settings.Currency,
		HasCompletedOnboarding: settings.HasCompletedOnboarding,
		IsSubscribed:           settings.IsSubscribed,
		HasLifetimeAccess:      settings.HasLifetimeAccess,
		CreatedAt:              settings.CreatedAt,
		UpdatedAt:              settings.UpdatedAt,
	}
}
