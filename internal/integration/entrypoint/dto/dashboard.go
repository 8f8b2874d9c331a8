package dto

import (
	"time"

	"github.com/budget-planner/backend/internal/application/usecase/dashboard"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// CategoryAmountResponse represents the spend of one category.
type CategoryAmountResponse struct {
	Category   CategoryResponse `json:"category"`
	Amount     string           `json:"amount"`
	Percentage float64          `json:"percentage"`
}

// TrendPointResponse represents one bucket of a trend series.
type TrendPointResponse struct {
	Date   time.Time `json:"date"`
	Label  string    `json:"label"`
	Amount string    `json:"amount"`
}

// RecentTransactionResponse is a compact transaction for the overview.
type RecentTransactionResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Amount    string           `json:"amount"`
	Category  CategoryResponse `json:"category"`
	Date      time.Time        `json:"date"`
	IsExpense bool             `json:"is_expense"`
}

// OverviewResponse represents the dashboard overview.
type OverviewResponse struct {
	Period             string                      `json:"period"`
	PeriodLabel        string                      `json:"period_label"`
	Currency           string                      `json:"currency"`
	Budget             string                      `json:"budget"`
	TotalSpent         string                      `json:"total_spent"`
	TotalIncome        string                      `json:"total_income"`
	Remaining          string                      `json:"remaining"`
	PercentUtilization float64                     `json:"percent_utilization"`
	PremiumEnabled     bool                        `json:"premium_enabled"`
	Categories         []CategoryAmountResponse    `json:"categories"`
	Recent             []RecentTransactionResponse `json:"recent_transactions"`
}

// TrendsResponse represents the monthly trends view.
type TrendsResponse struct {
	Points       []TrendPointResponse `json:"points"`
	TotalSpent   string               `json:"total_spent"`
	DailyAverage string               `json:"daily_average"`
	HasData      bool                 `json:"has_data"`
}

// BudgetVsActualResponse represents the budget versus actual view.
type BudgetVsActualResponse struct {
	Budget             string  `json:"budget"`
	Actual             string  `json:"actual"`
	Income             string  `json:"income"`
	Variance           string  `json:"variance"`
	Remaining          string  `json:"remaining"`
	PercentUtilization float64 `json:"percent_utilization"`
}

// CategoryAnalysisResponse represents the category breakdown view.
type CategoryAnalysisResponse struct {
	Categories    []CategoryAmountResponse `json:"categories"`
	Top           []CategoryAmountResponse `json:"top"`
	TotalSpent    string                   `json:"total_spent"`
	Selected      *CategoryResponse        `json:"selected,omitempty"`
	SelectedTrend []TrendPointResponse     `json:"selected_trend"`
}

// AnalysisResponse carries exactly one populated view.
type AnalysisResponse struct {
	Type           string                    `json:"type"`
	TimeFrame      string                    `json:"time_frame"`
	WindowStart    time.Time                 `json:"window_start"`
	WindowEnd      time.Time                 `json:"window_end"`
	Currency       string                    `json:"currency"`
	Trends         *TrendsResponse           `json:"trends,omitempty"`
	BudgetVsActual *BudgetVsActualResponse   `json:"budget_vs_actual,omitempty"`
	Categories     *CategoryAnalysisResponse `json:"categories,omitempty"`
}

func categoryInfo(tax *entity.Taxonomy, c entity.Category) CategoryResponse {
	info, ok := tax.Info(c)
	if !ok {
		info = entity.CategoryInfo{Key: c, Label: string(c)}
	}
	return ToCategoryResponse(info)
}

func toCategoryAmounts(tax *entity.Taxonomy, amounts []dashboard.CategoryAmount) []CategoryAmountResponse {
	out := make([]CategoryAmountResponse, len(amounts))
	for i, a := range amounts {
		out[i] = CategoryAmountResponse{
			Category:   categoryInfo(tax, a.Category),
			Amount:     Money(a.Amount),
			Percentage: Ratio(a.Percentage),
		}
	}
	return out
}

func toTrendPoints(points []dashboard.TrendPoint) []TrendPointResponse {
	out := make([]TrendPointResponse, len(points))
	for i, p := range points {
		out[i] = TrendPointResponse{Date: p.Date, Label: p.Label, Amount: Money(p.Amount)}
	}
	return out
}

// ToOverviewResponse converts a GetOverviewOutput to an OverviewResponse DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	o := output.Overview
	recent := make([]RecentTransactionResponse, len(o.Recent))
	for i, t := range o.Recent {
		recent[i] = RecentTransactionResponse{
			ID:        t.ID.String(),
			Title:     t.Title,
			Amount:    Money(t.Amount),
			Category:  categoryInfo(output.Taxonomy, output.Taxonomy.Resolve(t.Category)),
			Date:      t.Date,
			IsExpense: t.IsExpense,
		}
	}

	return OverviewResponse{
		Period:             string(o.Period),
		PeriodLabel:        o.Period.DisplayName(),
		Currency:           output.Settings.Currency,
		Budget:             Money(o.Budget),
		TotalSpent:         Money(o.TotalSpent),
		TotalIncome:        Money(o.TotalIncome),
		Remaining:          Money(o.Remaining),
		PercentUtilization: Ratio(o.PercentUtilization),
		PremiumEnabled:     output.Settings.PremiumEnabled(),
		Categories:         toCategoryAmounts(output.Taxonomy, o.Categories),
		Recent:             recent,
	}
}

// ToAnalysisResponse converts a GetAnalysisOutput to an AnalysisResponse DTO.
func ToAnalysisResponse(output *dashboard.GetAnalysisOutput) AnalysisResponse {
	r := output.Result
	tax := output.Taxonomy
	response := AnalysisResponse{
		Type:        string(r.Type),
		TimeFrame:   string(r.TimeFrame),
		WindowStart: r.WindowStart,
		WindowEnd:   r.WindowEnd,
		Currency:    output.Currency,
	}

	if r.Trends != nil {
		response.Trends = &TrendsResponse{
			Points:       toTrendPoints(r.Trends.Points),
			TotalSpent:   Money(r.Trends.TotalSpent),
			DailyAverage: Money(r.Trends.DailyAverage),
			HasData:      r.Trends.HasData,
		}
	}
	if r.BudgetVsActual != nil {
		b := r.BudgetVsActual
		response.BudgetVsActual = &BudgetVsActualResponse{
			Budget:             Money(b.Budget),
			Actual:             Money(b.Actual),
			Income:             Money(b.Income),
			Variance:           Money(b.Variance),
			Remaining:          Money(b.Remaining),
			PercentUtilization: Ratio(b.PercentUtilization),
		}
	}
	if r.Categories != nil {
		c := r.Categories
		ca := &CategoryAnalysisResponse{
			Categories:    toCategoryAmounts(tax, c.Categories),
			Top:           toCategoryAmounts(tax, c.Top),
			TotalSpent:    Money(c.TotalSpent),
			SelectedTrend: toTrendPoints(c.SelectedTrend),
		}
		if c.Selected != nil {
			selected := categoryInfo(tax, *c.Selected)
			ca.Selected = &selected
		}
		response.Categories = ca
	}

	return response
}
