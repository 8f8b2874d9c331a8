package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budget-planner/backend/internal/application/usecase/dashboard"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

func analyzeCmd(opts *reportOptions) *cobra.Command {
	var (
		analysisType string
		timeFrame    string
		category     string
		topN         int
		adjustment   string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print an analysis view",
		Long: `Compute one analysis view over a time frame ending at --now.

Types:
  monthly_trends     spending per bucket (7 days, 4 weeks or 12 months)
  budget_vs_actual   adjusted budget compared with actual spend
  category_analysis  spend per category with the top N categories`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, ok := dashboard.ParseAnalysisType(analysisType)
			if !ok {
				return fmt.Errorf("unknown analysis type %q", analysisType)
			}
			tf, ok := entity.ParseTimeFrame(timeFrame)
			if !ok {
				return fmt.Errorf("unknown time frame %q", timeFrame)
			}
			if topN <= 0 {
				return fmt.Errorf("--top must be a positive integer")
			}

			currency, err := opts.currencyCode()
			if err != nil {
				return err
			}
			transactions, err := opts.loadTransactions()
			if err != nil {
				return err
			}
			budget, err := opts.budget()
			if err != nil {
				return err
			}
			now, err := opts.referenceTime()
			if err != nil {
				return err
			}

			tax := entity.DefaultTaxonomy()
			req := dashboard.AnalysisRequest{
				Type:         at,
				TimeFrame:    tf,
				Transactions: transactions,
				Budget:       budget,
				TopN:         topN,
				Taxonomy:     tax,
				Now:          now,
				Adjustment:   dashboard.ParseBudgetAdjustment(adjustment),
			}
			if category != "" {
				c := entity.Category(category)
				req.Category = &c
			}

			response := dto.ToAnalysisResponse(&dashboard.GetAnalysisOutput{
				Result:   dashboard.Analyze(req),
				Currency: currency,
				Taxonomy: tax,
			})
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), response)
			}
			return renderAnalysis(cmd.OutOrStdout(), response)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&analysisType, "type", "t", string(dashboard.AnalysisTypeMonthlyTrends), "analysis type")
	flags.StringVar(&timeFrame, "time-frame", string(entity.TimeFrameMonth), "time frame (week, month, year)")
	flags.StringVar(&category, "category", "", "limit trends to one category")
	flags.IntVar(&topN, "top", dashboard.DefaultTopN, "number of top categories")
	flags.StringVar(&adjustment, "adjustment", string(dashboard.BudgetAdjustmentCalendar), "budget adjustment (calendar, legacy)")

	return cmd
}
