package entity

import (
	"time"

	"github.com/google/uuid"
)

// Budget defaults applied to new users and on reset.
const (
	DefaultDailyBudgetAmount = 33.33
	DefaultBudgetPeriod      = BudgetPeriodMonthly
	DefaultCurrency          = "USD"
)

// BudgetConfig is the budget input of the analysis engine.
// DailyRate is the only stored budget figure; period amounts are derived from it.
type BudgetConfig struct {
	DailyRate float64
	Period    BudgetPeriod
}

// PeriodAmount returns the budget for one configured period.
func (c BudgetConfig) PeriodAmount() float64 {
	return c.Period.FromDaily(c.DailyRate)
}

// BudgetSettings holds a user's budget and subscription preferences.
type BudgetSettings struct {
	UserID                 uuid.UUID
	DailyBudgetAmount      float64
	BudgetPeriod           BudgetPeriod
	Currency               string
	HasCompletedOnboarding bool
	IsSubscribed           bool
	HasLifetimeAccess      bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// BudgetDefaults are the values new and reset settings start from.
type BudgetDefaults struct {
	DailyAmount float64
	Period      BudgetPeriod
	Currency    string
}

// StandardBudgetDefaults returns roughly 1000 per month in USD.
func StandardBudgetDefaults() BudgetDefaults {
	return BudgetDefaults{
		DailyAmount: DefaultDailyBudgetAmount,
		Period:      DefaultBudgetPeriod,
		Currency:    DefaultCurrency,
	}
}

// NewSettings creates settings for userID from the defaults.
func (d BudgetDefaults) NewSettings(userID uuid.UUID) *BudgetSettings {
	return NewBudgetSettings(userID, d.DailyAmount, d.Period, d.Currency)
}

// NewBudgetSettings creates settings with the given defaults.
func NewBudgetSettings(userID uuid.UUID, dailyAmount float64, period BudgetPeriod, currency string) *BudgetSettings {
	now := time.Now().UTC()
	if !period.IsValid() {
		period = DefaultBudgetPeriod
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &BudgetSettings{
		UserID:            userID,
		DailyBudgetAmount: dailyAmount,
		BudgetPeriod:      period,
		Currency:          currency,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// PremiumEnabled reports whether premium features are unlocked.
func (s *BudgetSettings) PremiumEnabled() bool {
	return s.IsSubscribed || s.HasLifetimeAccess
}

// Config returns the engine view of the settings.
func (s *BudgetSettings) Config() BudgetConfig {
	return BudgetConfig{DailyRate: s.DailyBudgetAmount, Period: s.BudgetPeriod}
}

// PeriodBudget returns the budget for the selected period.
func (s *BudgetSettings) PeriodBudget() float64 {
	return s.Config().PeriodAmount()
}

// SetPeriodBudget stores amount, expressed in the selected period, as a daily rate.
func (s *BudgetSettings) SetPeriodBudget(amount float64) {
	s.DailyBudgetAmount = s.BudgetPeriod.NormalizeToDaily(amount)
}

// ResetToDefaults restores the default budget and clears subscription flags.
// Onboarding state is kept.
func (s *BudgetSettings) ResetToDefaults(d BudgetDefaults) {
	s.DailyBudgetAmount = d.DailyAmount
	s.BudgetPeriod = d.Period
	s.Currency = d.Currency
	s.IsSubscribed = false
	s.HasLifetimeAccess = false
	s.UpdatedAt = time.Now().UTC()
}
