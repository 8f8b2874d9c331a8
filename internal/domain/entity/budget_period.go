package entity

import (
	"math"
	"strings"
)

// BudgetPeriod is the cadence a user budgets in.
type BudgetPeriod string

const (
	BudgetPeriodDaily     BudgetPeriod = "daily"
	BudgetPeriodWeekly    BudgetPeriod = "weekly"
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
	BudgetPeriodCustom    BudgetPeriod = "custom"
)

// BudgetPeriods lists every period in display order.
var BudgetPeriods = []BudgetPeriod{
	BudgetPeriodDaily,
	BudgetPeriodWeekly,
	BudgetPeriodMonthly,
	BudgetPeriodQuarterly,
	BudgetPeriodYearly,
	BudgetPeriodCustom,
}

// ParseBudgetPeriod parses a period key case-insensitively.
func ParseBudgetPeriod(s string) (BudgetPeriod, bool) {
	p := BudgetPeriod(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", false
	}
	return p, true
}

// IsValid reports whether p is a known period.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly,
		BudgetPeriodQuarterly, BudgetPeriodYearly, BudgetPeriodCustom:
		return true
	}
	return false
}

// DaysInPeriod returns the fixed day count used for period conversion.
// Months and quarters are approximated; custom falls back to a month.
func (p BudgetPeriod) DaysInPeriod() int {
	switch p {
	case BudgetPeriodDaily:
		return 1
	case BudgetPeriodWeekly:
		return 7
	case BudgetPeriodMonthly:
		return 30
	case BudgetPeriodQuarterly:
		return 90
	case BudgetPeriodYearly:
		return 365
	default:
		return 30
	}
}

// DisplayName returns the capitalized period name.
func (p BudgetPeriod) DisplayName() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// NormalizeToDaily converts a per-period amount into a daily rate.
// Negative or non-finite input yields 0.
func (p BudgetPeriod) NormalizeToDaily(amount float64) float64 {
	if !isNonNegativeFinite(amount) {
		return 0
	}
	return finiteOrZero(amount / float64(p.DaysInPeriod()))
}

// FromDaily converts a daily rate into the amount for one period.
// Negative or non-finite input yields 0.
func (p BudgetPeriod) FromDaily(dailyRate float64) float64 {
	if !isNonNegativeFinite(dailyRate) {
		return 0
	}
	return finiteOrZero(dailyRate * float64(p.DaysInPeriod()))
}

func isNonNegativeFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
