package dashboard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// GetOverviewOutput represents the dashboard overview.
type GetOverviewOutput struct {
	Overview Overview
	Settings *entity.BudgetSettings
	Taxonomy *entity.Taxonomy
}

// GetOverviewUseCase builds the free dashboard summary.
type GetOverviewUseCase struct {
	loader snapshotLoader
	opts   Options
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	opts Options,
) *GetOverviewUseCase {
	opts = opts.withDefaults()
	return &GetOverviewUseCase{
		loader: snapshotLoader{
			transactionRepo: transactionRepo,
			settingsRepo:    settingsRepo,
			defaults:        opts.Defaults,
		},
		opts: opts,
	}
}

// Execute summarizes all of the user's transactions against the current period budget.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	snap, err := uc.loader.load(ctx, input.UserID, nil)
	if err != nil {
		slog.Error("Failed to load dashboard snapshot", "error", err, "user_id", input.UserID)
		return nil, err
	}

	return &GetOverviewOutput{
		Overview: BuildOverview(snap.transactions, snap.settings.Config(), uc.opts.Taxonomy, uc.opts.RecentLimit),
		Settings: snap.settings,
		Taxonomy: uc.opts.Taxonomy,
	}, nil
}
