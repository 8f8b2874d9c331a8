package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderOverview(w io.Writer, o dto.OverviewResponse) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Budget overview (%s)", o.PeriodLabel)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Budget\t%s %s\n", o.Budget, o.Currency)
	fmt.Fprintf(tw, "Spent\t%s %s\n", o.TotalSpent, o.Currency)
	fmt.Fprintf(tw, "Income\t%s %s\n", o.TotalIncome, o.Currency)
	fmt.Fprintf(tw, "Remaining\t%s %s\n", o.Remaining, o.Currency)
	fmt.Fprintf(tw, "Utilization\t%.0f%%\n", o.PercentUtilization)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if err := renderCategories(w, "Spending by category", o.Categories); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Recent transactions"))
	if len(o.Recent) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("(none)"))
		return nil
	}
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range o.Recent {
		sign := "-"
		if !t.IsExpense {
			sign = "+"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s%s\n", t.Date.Format("2006-01-02"), t.Title, t.Category.Label, sign, t.Amount)
	}
	return tw.Flush()
}

func renderAnalysis(w io.Writer, a dto.AnalysisResponse) error {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s over the last %s", a.Type, a.TimeFrame)))
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%s to %s", a.WindowStart.Format("2006-01-02"), a.WindowEnd.Format("2006-01-02"))))
	fmt.Fprintln(w)

	switch {
	case a.Trends != nil:
		if !a.Trends.HasData {
			fmt.Fprintln(w, mutedStyle.Render("No expenses in this time frame."))
		}
		if err := renderTrend(w, a.Trends.Points); err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Total spent: %s %s\n", a.Trends.TotalSpent, a.Currency)
		fmt.Fprintf(w, "Daily average: %s %s\n", a.Trends.DailyAverage, a.Currency)
	case a.BudgetVsActual != nil:
		b := a.BudgetVsActual
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Budget\t%s %s\n", b.Budget, a.Currency)
		fmt.Fprintf(tw, "Actual\t%s %s\n", b.Actual, a.Currency)
		fmt.Fprintf(tw, "Income\t%s %s\n", b.Income, a.Currency)
		fmt.Fprintf(tw, "Variance\t%s %s\n", b.Variance, a.Currency)
		fmt.Fprintf(tw, "Remaining\t%s %s\n", b.Remaining, a.Currency)
		fmt.Fprintf(tw, "Utilization\t%.0f%%\n", b.PercentUtilization)
		return tw.Flush()
	case a.Categories != nil:
		c := a.Categories
		if err := renderCategories(w, "Top categories", c.Top); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nTotal spent: %s %s\n", c.TotalSpent, a.Currency)
		if c.Selected != nil {
			fmt.Fprintln(w)
			fmt.Fprintln(w, headerStyle.Render("Trend for "+c.Selected.Label))
			if len(c.SelectedTrend) == 0 {
				fmt.Fprintln(w, mutedStyle.Render("(no expenses)"))
				return nil
			}
			return renderTrend(w, c.SelectedTrend)
		}
	}
	return nil
}

func renderCategories(w io.Writer, title string, items []dto.CategoryAmountResponse) error {
	fmt.Fprintln(w, headerStyle.Render(title))
	if len(items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("(no expenses)"))
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%.0f%%\n", item.Category.Label, item.Amount, item.Percentage*100)
	}
	return tw.Flush()
}

func renderTrend(w io.Writer, points []dto.TrendPointResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%s\n", p.Label, p.Amount)
	}
	return tw.Flush()
}
