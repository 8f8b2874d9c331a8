package category

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// DefaultSuggestionTimeout bounds one call to the suggestion service.
const DefaultSuggestionTimeout = 10 * time.Second

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	Title     string
	Amount    float64
	IsExpense bool
}

// SuggestCategoryOutput represents a category suggestion. Failure is set when
// the service could not answer and the fallback category was returned instead.
type SuggestCategoryOutput struct {
	Category   entity.CategoryInfo
	Confidence float64
	Reasoning  string
	Failure    *SuggestionFailure
}

// SuggestCategoryUseCase suggests a taxonomy category for a transaction title.
type SuggestCategoryUseCase struct {
	suggester adapter.CategorySuggestionService
	taxonomy  *entity.Taxonomy
	timeout   time.Duration
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(
	suggester adapter.CategorySuggestionService,
	taxonomy *entity.Taxonomy,
	timeout time.Duration,
) *SuggestCategoryUseCase {
	if timeout <= 0 {
		timeout = DefaultSuggestionTimeout
	}
	return &SuggestCategoryUseCase{
		suggester: suggester,
		taxonomy:  taxonomy,
		timeout:   timeout,
	}
}

// Execute asks the suggester for a category. Answers outside the taxonomy and
// service failures both resolve to the fallback category.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSuggestionTitleRequired,
			"title is required",
			domainerror.ErrSuggestionTitleRequired,
		)
	}

	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return uc.fallback(newFailure(FailureNotConfigured, false)), nil
	}

	candidates := make([]string, 0, uc.taxonomy.Len())
	for _, c := range uc.taxonomy.Categories() {
		candidates = append(candidates, string(c))
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	suggestion, err := uc.suggester.Suggest(ctx, &adapter.CategorySuggestionRequest{
		Title:      title,
		Amount:     input.Amount,
		IsExpense:  input.IsExpense,
		Candidates: candidates,
	})
	if err != nil {
		failure := classifyError(err)
		slog.Warn("Category suggestion failed", "error", err, "reason", failure.Reason)
		return uc.fallback(failure), nil
	}

	info, _ := uc.taxonomy.Info(uc.taxonomy.Resolve(strings.TrimSpace(suggestion.Category)))
	return &SuggestCategoryOutput{
		Category:   info,
		Confidence: clampConfidence(suggestion.Confidence),
		Reasoning:  suggestion.Reasoning,
	}, nil
}

func (uc *SuggestCategoryUseCase) fallback(failure SuggestionFailure) *SuggestCategoryOutput {
	info, _ := uc.taxonomy.Info(uc.taxonomy.Fallback())
	return &SuggestCategoryOutput{
		Category: info,
		Failure:  &failure,
	}
}

func clampConfidence(c float64) float64 {
	switch {
	case math.IsNaN(c) || c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}
