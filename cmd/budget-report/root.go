package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/spf13/cobra"

	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/integration/adapters"
)

// reportOptions are the flags shared by every subcommand.
type reportOptions struct {
	file        string
	format      string
	dailyBudget float64
	period      string
	now         string
	timezone    string
	currency    string
	asJSON      bool
}

func newRootCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "budget-report",
		Short: "Summarize an exported transaction file",
		Long: `budget-report reads a transaction export (CSV or JSON, as produced by
GET /api/v1/transactions/export) and prints the dashboard overview or one of
the analysis views without a running server.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "transaction export to read (required)")
	flags.StringVar(&opts.format, "format", "csv", "export format (csv, json)")
	flags.Float64Var(&opts.dailyBudget, "daily-budget", entity.DefaultDailyBudgetAmount, "daily budget rate")
	flags.StringVar(&opts.period, "period", string(entity.DefaultBudgetPeriod), "budget period (weekly, monthly, yearly)")
	flags.StringVar(&opts.now, "now", "", "reference time, RFC 3339 or YYYY-MM-DD (default: current time)")
	flags.StringVar(&opts.timezone, "timezone", "UTC", "IANA timezone for calendar arithmetic")
	flags.StringVar(&opts.currency, "currency", entity.DefaultCurrency, "ISO 4217 currency code shown in the report")
	flags.BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	_ = cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(overviewCmd(opts))
	cmd.AddCommand(analyzeCmd(opts))

	return cmd
}

func (o *reportOptions) loadTransactions() ([]*entity.Transaction, error) {
	codec, ok := adapters.CodecForFormat(o.format)
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", o.format)
	}

	f, err := os.Open(o.file)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", o.file, err)
	}
	defer f.Close()

	transactions, err := codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", o.file, err)
	}
	return transactions, nil
}

func (o *reportOptions) budget() (entity.BudgetConfig, error) {
	period, ok := entity.ParseBudgetPeriod(o.period)
	if !ok {
		return entity.BudgetConfig{}, fmt.Errorf("unknown budget period %q", o.period)
	}
	return entity.BudgetConfig{DailyRate: o.dailyBudget, Period: period}, nil
}

func (o *reportOptions) currencyCode() (string, error) {
	code := strings.ToUpper(strings.TrimSpace(o.currency))
	if money.GetCurrency(code) == nil {
		return "", fmt.Errorf("unknown currency %q", o.currency)
	}
	return code, nil
}

func (o *reportOptions) location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", o.timezone, err)
	}
	return loc, nil
}

func (o *reportOptions) referenceTime() (time.Time, error) {
	loc, err := o.location()
	if err != nil {
		return time.Time{}, err
	}
	if o.now == "" {
		return time.Now().In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, o.now); err == nil {
		return t.In(loc), nil
	}
	t, err := time.ParseInLocation("2006-01-02", o.now, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: use RFC 3339 or YYYY-MM-DD", o.now)
	}
	// A bare date means the end of that day.
	return t.Add(24*time.Hour - time.Nanosecond), nil
}
