package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// AnalysisType selects which analysis view is computed.
type AnalysisType string

const (
	AnalysisTypeMonthlyTrends    AnalysisType = "monthly_trends"
	AnalysisTypeBudgetVsActual   AnalysisType = "budget_vs_actual"
	AnalysisTypeCategoryAnalysis AnalysisType = "category_analysis"
)

// DefaultTopN is the number of leading categories reported by category analysis.
const DefaultTopN = 5

// DefaultRecentLimit is the number of recent transactions on the overview.
const DefaultRecentLimit = 5

// ParseAnalysisType parses an analysis type case-insensitively.
func ParseAnalysisType(s string) (AnalysisType, bool) {
	at := AnalysisType(strings.ToLower(strings.TrimSpace(s)))
	switch at {
	case AnalysisTypeMonthlyTrends, AnalysisTypeBudgetVsActual, AnalysisTypeCategoryAnalysis:
		return at, true
	}
	return "", false
}

// AnalysisRequest is a snapshot of everything one analysis needs.
type AnalysisRequest struct {
	Type         AnalysisType
	TimeFrame    entity.TimeFrame
	Transactions []*entity.Transaction
	Budget       entity.BudgetConfig
	Category     *entity.Category
	TopN         int
	Taxonomy     *entity.Taxonomy
	Now          time.Time
	Adjustment   BudgetAdjustment
}

// TrendsResult is the monthly-trend view.
type TrendsResult struct {
	Points       []TrendPoint
	TotalSpent   float64
	DailyAverage float64
	HasData      bool
}

// BudgetVsActualResult compares the adjusted budget with actual spend.
type BudgetVsActualResult struct {
	Budget             float64
	Actual             float64
	Income             float64
	Variance           float64
	Remaining          float64
	PercentUtilization float64
}

// CategoryAnalysisResult is the category breakdown view.
// Selected is resolved through the taxonomy, so an unknown key selects the
// fallback category and SelectedTrend is that category's series.
// SelectedTrend is empty when the selected category has no expenses in the window.
type CategoryAnalysisResult struct {
	Categories    []CategoryAmount
	Top           []CategoryAmount
	TotalSpent    float64
	Selected      *entity.Category
	SelectedTrend []TrendPoint
}

// AnalysisResult holds exactly one populated view for known analysis types.
type AnalysisResult struct {
	Type           AnalysisType
	TimeFrame      entity.TimeFrame
	WindowStart    time.Time
	WindowEnd      time.Time
	Trends         *TrendsResult
	BudgetVsActual *BudgetVsActualResult
	Categories     *CategoryAnalysisResult
}

// Analyze derives the requested view from the request snapshot. It never fails:
// an unknown analysis type yields a result with no populated view.
func Analyze(req AnalysisRequest) AnalysisResult {
	tax := req.Taxonomy
	if tax == nil {
		tax = entity.DefaultTaxonomy()
	}
	tf := req.TimeFrame
	if !tf.IsValid() {
		tf = entity.TimeFrameMonth
	}

	result := AnalysisResult{
		Type:        req.Type,
		TimeFrame:   tf,
		WindowStart: tf.WindowStart(req.Now),
		WindowEnd:   req.Now,
	}

	window := FilterByTimeFrame(req.Transactions, tf, req.Now)

	switch req.Type {
	case AnalysisTypeMonthlyTrends:
		result.Trends = analyzeTrends(window, tf, req.Now, tax, req.Category)
	case AnalysisTypeBudgetVsActual:
		result.BudgetVsActual = analyzeBudgetVsActual(window, req, tf)
	case AnalysisTypeCategoryAnalysis:
		result.Categories = analyzeCategories(window, tf, req.Now, tax, req.Category, req.TopN)
	}

	return result
}

func analyzeTrends(
	window []*entity.Transaction,
	tf entity.TimeFrame,
	now time.Time,
	tax *entity.Taxonomy,
	category *entity.Category,
) *TrendsResult {
	var match TransactionMatcher
	if category != nil {
		match = CategoryMatcher(tax, *category)
	}

	var spent float64
	hasData := false
	for _, t := range window {
		if t.IsExpense && (match == nil || match(t)) {
			spent += sanitizeAmount(t.Amount)
			hasData = true
		}
	}
	spent = finiteOrZero(spent)

	return &TrendsResult{
		Points:       TrendSeries(GenerateBuckets(tf, now), window, match),
		TotalSpent:   spent,
		DailyAverage: DailyAverage(spent, tf, now),
		HasData:      hasData,
	}
}

func analyzeBudgetVsActual(window []*entity.Transaction, req AnalysisRequest, tf entity.TimeFrame) *BudgetVsActualResult {
	budget := AdjustedBudget(req.Budget, tf, req.Now, req.Adjustment)
	actual := SumExpenses(window)
	income := SumIncome(window)

	return &BudgetVsActualResult{
		Budget:             budget,
		Actual:             actual,
		Income:             income,
		Variance:           Variance(budget, actual),
		Remaining:          Remaining(budget, actual, income),
		PercentUtilization: PercentUtilization(actual, budget),
	}
}

func analyzeCategories(
	window []*entity.Transaction,
	tf entity.TimeFrame,
	now time.Time,
	tax *entity.Taxonomy,
	selected *entity.Category,
	topN int,
) *CategoryAnalysisResult {
	if topN <= 0 {
		topN = DefaultTopN
	}

	sorted := SortedDescending(tax, TotalByCategory(tax, window))
	result := &CategoryAnalysisResult{
		Categories:    sorted,
		Top:           TopN(sorted, topN),
		TotalSpent:    SumExpenses(window),
		SelectedTrend: []TrendPoint{},
	}

	if selected == nil {
		return result
	}

	c := tax.Resolve(string(*selected))
	result.Selected = &c

	match := CategoryMatcher(tax, c)
	for _, t := range window {
		if t.IsExpense && match(t) {
			result.SelectedTrend = TrendSeries(GenerateBuckets(tf, now), window, match)
			break
		}
	}

	return result
}

// Overview is the dashboard summary over all of a user's transactions.
type Overview struct {
	Period             entity.BudgetPeriod
	Budget             float64
	TotalSpent         float64
	TotalIncome        float64
	Remaining          float64
	PercentUtilization float64
	Categories         []CategoryAmount
	Recent             []*entity.Transaction
}

// BuildOverview summarizes every transaction against one period's budget.
func BuildOverview(
	transactions []*entity.Transaction,
	cfg entity.BudgetConfig,
	tax *entity.Taxonomy,
	recentLimit int,
) Overview {
	if tax == nil {
		tax = entity.DefaultTaxonomy()
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}

	budget := cfg.PeriodAmount()
	spent := SumExpenses(transactions)
	income := SumIncome(transactions)

	return Overview{
		Period:             cfg.Period,
		Budget:             budget,
		TotalSpent:         spent,
		TotalIncome:        income,
		Remaining:          Remaining(budget, spent, income),
		PercentUtilization: PercentUtilization(spent, budget),
		Categories:         SortedDescending(tax, TotalByCategory(tax, transactions)),
		Recent:             mostRecent(transactions, recentLimit),
	}
}

// mostRecent returns up to n transactions, newest first.
func mostRecent(transactions []*entity.Transaction, n int) []*entity.Transaction {
	recent := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t != nil {
			recent = append(recent, t)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}
