package dashboard

import (
	"math"
	"time"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// BudgetAdjustment selects how a daily rate is scaled to an analysis time frame.
type BudgetAdjustment string

const (
	// BudgetAdjustmentCalendar multiplies the daily rate by the calendar days in the time frame.
	BudgetAdjustmentCalendar BudgetAdjustment = "calendar"

	// BudgetAdjustmentLegacy scales the stored period budget: a quarter of it for a week,
	// as is for a month, twelve times it for a year.
	BudgetAdjustmentLegacy BudgetAdjustment = "legacy"
)

// ParseBudgetAdjustment parses an adjustment mode, defaulting to calendar.
func ParseBudgetAdjustment(s string) BudgetAdjustment {
	if BudgetAdjustment(s) == BudgetAdjustmentLegacy {
		return BudgetAdjustmentLegacy
	}
	return BudgetAdjustmentCalendar
}

// AdjustedBudget converts the budget into the amount available over the time frame ending at now.
func AdjustedBudget(cfg entity.BudgetConfig, tf entity.TimeFrame, now time.Time, mode BudgetAdjustment) float64 {
	if mode == BudgetAdjustmentLegacy {
		periodAmount := cfg.PeriodAmount()
		switch tf {
		case entity.TimeFrameWeek:
			return finiteOrZero(periodAmount / 4)
		case entity.TimeFrameYear:
			return finiteOrZero(periodAmount * 12)
		default:
			return finiteOrZero(periodAmount)
		}
	}

	rate := sanitizeAmount(cfg.DailyRate)
	return finiteOrZero(rate * float64(tf.CalendarDays(now)))
}

// TotalSpent sums expense amounts dated within the time frame window.
func TotalSpent(transactions []*entity.Transaction, tf entity.TimeFrame, now time.Time) float64 {
	return SumExpenses(FilterByTimeFrame(transactions, tf, now))
}

// TotalIncome sums income amounts dated within the time frame window.
func TotalIncome(transactions []*entity.Transaction, tf entity.TimeFrame, now time.Time) float64 {
	return SumIncome(FilterByTimeFrame(transactions, tf, now))
}

// SumExpenses sums the amounts of all expenses, ignoring dates.
func SumExpenses(transactions []*entity.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		if t != nil && t.IsExpense {
			total += sanitizeAmount(t.Amount)
		}
	}
	return finiteOrZero(total)
}

// SumIncome sums the amounts of all income, ignoring dates.
func SumIncome(transactions []*entity.Transaction) float64 {
	var total float64
	for _, t := range transactions {
		if t != nil && !t.IsExpense {
			total += sanitizeAmount(t.Amount)
		}
	}
	return finiteOrZero(total)
}

// Remaining returns budget - spent + income. Negative means over budget.
func Remaining(budget, spent, income float64) float64 {
	return finiteOrZero(finiteOrZero(budget) - finiteOrZero(spent) + finiteOrZero(income))
}

// Variance returns budget - spent. Negative means over budget.
func Variance(budget, spent float64) float64 {
	return finiteOrZero(finiteOrZero(budget) - finiteOrZero(spent))
}

// PercentUtilization returns spent as a percentage of budget, unclamped.
// A budget of zero or less yields 0.
func PercentUtilization(spent, budget float64) float64 {
	return finiteOrZero(safeDivide(spent, budget) * 100)
}

// DailyAverage spreads total over the calendar days of the time frame ending at now.
func DailyAverage(total float64, tf entity.TimeFrame, now time.Time) float64 {
	return safeDivide(total, float64(tf.CalendarDays(now)))
}

// safeDivide returns n/d, or 0 when d <= 0 or either operand or the result is not finite.
func safeDivide(n, d float64) float64 {
	if !isFinite(n) || !isFinite(d) || d <= 0 {
		return 0
	}
	return finiteOrZero(n / d)
}

// sanitizeAmount maps corrupted amounts (negative, NaN, Inf) to 0.
func sanitizeAmount(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}

func finiteOrZero(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
