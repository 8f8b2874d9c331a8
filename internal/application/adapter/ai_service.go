package adapter

import "context"

// CategorySuggestionRequest describes a transaction to categorize.
type CategorySuggestionRequest struct {
	Title     string
	Amount    float64
	IsExpense bool
	// Candidates are the taxonomy keys the answer must be chosen from.
	Candidates []string
}

// CategorySuggestion is the suggester's answer. Category may be outside Candidates;
// callers resolve it through the taxonomy.
type CategorySuggestion struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// CategorySuggestionService suggests a category for a transaction title.
type CategorySuggestionService interface {
	// Suggest asks the model for the best matching category.
	Suggest(ctx context.Context, request *CategorySuggestionRequest) (*CategorySuggestion, error)

	// IsAvailable checks if the service is configured.
	IsAvailable() bool
}
