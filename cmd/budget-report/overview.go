package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/budget-planner/backend/internal/application/usecase/dashboard"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

func overviewCmd(opts *reportOptions) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Print the dashboard overview",
		Long:  `Summarize every transaction in the file against one budget period.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			tax := entity.DefaultTaxonomy()
			settings := entity.NewBudgetSettings(uuid.Nil, budget.DailyRate, budget.Period, currency)
			output := &dashboard.GetOverviewOutput{
				Overview: dashboard.BuildOverview(transactions, budget, tax, recent),
				Settings: settings,
				Taxonomy: tax,
			}

			response := dto.ToOverviewResponse(output)
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), response)
			}
			return renderOverview(cmd.OutOrStdout(), response)
		},
	}

	cmd.Flags().IntVar(&recent, "recent", dashboard.DefaultRecentLimit, "number of recent transactions to show")

	return cmd
}
