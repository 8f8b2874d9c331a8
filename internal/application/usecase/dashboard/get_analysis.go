package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// GetAnalysisInput represents the input for running an analysis.
type GetAnalysisInput struct {
	UserID    uuid.UUID
	Type      string
	TimeFrame string
	Category  string
	TopN      int
}

// GetAnalysisOutput represents the output of running an analysis.
type GetAnalysisOutput struct {
	Result   AnalysisResult
	Currency string
	Taxonomy *entity.Taxonomy
}

// GetAnalysisUseCase handles the premium analytics views.
type GetAnalysisUseCase struct {
	loader snapshotLoader
	opts   Options
}

// NewGetAnalysisUseCase creates a new GetAnalysisUseCase instance.
func NewGetAnalysisUseCase(
	transactionRepo adapter.TransactionRepository,
	settingsRepo adapter.SettingsRepository,
	opts Options,
) *GetAnalysisUseCase {
	opts = opts.withDefaults()
	return &GetAnalysisUseCase{
		loader: snapshotLoader{
			transactionRepo: transactionRepo,
			settingsRepo:    settingsRepo,
			defaults:        opts.Defaults,
		},
		opts: opts,
	}
}

// Execute validates the selection, loads the window's transactions and runs the engine.
func (uc *GetAnalysisUseCase) Execute(ctx context.Context, input GetAnalysisInput) (*GetAnalysisOutput, error) {
	analysisType, timeFrame, err := uc.validateInput(input)
	if err != nil {
		return nil, err
	}

	now := uc.opts.now()
	window := [2]time.Time{timeFrame.WindowStart(now), now}

	snap, err := uc.loader.load(ctx, input.UserID, &window)
	if err != nil {
		slog.Error("Failed to load analysis snapshot", "error", err, "user_id", input.UserID)
		return nil, err
	}

	if !snap.settings.PremiumEnabled() {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodePremiumRequired,
			"advanced analytics require an active subscription",
			domainerror.ErrPremiumRequired,
		)
	}

	req := AnalysisRequest{
		Type:         analysisType,
		TimeFrame:    timeFrame,
		Transactions: snap.transactions,
		Budget:       snap.settings.Config(),
		TopN:         uc.opts.TopN,
		Taxonomy:     uc.opts.Taxonomy,
		Now:          now,
		Adjustment:   uc.opts.Adjustment,
	}
	if input.TopN > 0 {
		req.TopN = input.TopN
	}
	if input.Category != "" {
		c := uc.opts.Taxonomy.Resolve(input.Category)
		req.Category = &c
	}

	return &GetAnalysisOutput{
		Result:   Analyze(req),
		Currency: snap.settings.Currency,
		Taxonomy: uc.opts.Taxonomy,
	}, nil
}

// validateInput parses the analysis type and time frame.
func (uc *GetAnalysisUseCase) validateInput(input GetAnalysisInput) (AnalysisType, entity.TimeFrame, error) {
	analysisType, ok := ParseAnalysisType(input.Type)
	if !ok {
		return "", "", domainerror.NewAnalysisError(
			domainerror.ErrCodeInvalidAnalysisType,
			"type must be: monthly_trends, budget_vs_actual, or category_analysis",
			domainerror.ErrInvalidAnalysisType,
		)
	}

	timeFrame := entity.TimeFrameMonth
	if input.TimeFrame != "" {
		timeFrame, ok = entity.ParseTimeFrame(input.TimeFrame)
		if !ok {
			return "", "", domainerror.NewAnalysisError(
				domainerror.ErrCodeInvalidTimeFrame,
				"time_frame must be: week, month, or year",
				domainerror.ErrInvalidTimeFrame,
			)
		}
	}

	if input.TopN < 0 {
		return "", "", domainerror.NewAnalysisError(
			domainerror.ErrCodeInvalidTopN,
			"top_n must be a positive integer",
			domainerror.ErrInvalidTopN,
		)
	}

	return analysisType, timeFrame, nil
}
