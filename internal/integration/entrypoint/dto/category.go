package dto

import (
	"github.com/budget-planner/backend/internal/application/usecase/category"
	"github.com/budget-planner/backend/internal/domain/entity"
)

// SuggestCategoryRequest represents the request body for a category suggestion.
type SuggestCategoryRequest struct {
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	IsExpense *bool   `json:"is_expense"`
}

// CategoryResponse represents a taxonomy member in API responses.
type CategoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Fallback   string             `json:"fallback"`
}

// SuggestionFailureResponse explains why a suggestion fell back.
type SuggestionFailureResponse struct {
	Reason    string `json:"reason"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// CategorySuggestionResponse represents a category suggestion.
type CategorySuggestionResponse struct {
	Category   CategoryResponse           `json:"category"`
	Confidence float64                    `json:"confidence"`
	Reasoning  string                     `json:"reasoning,omitempty"`
	Fallback   bool                       `json:"fallback"`
	Failure    *SuggestionFailureResponse `json:"failure,omitempty"`
}

// ToCategoryResponse converts taxonomy metadata to a CategoryResponse DTO.
func ToCategoryResponse(info entity.CategoryInfo) CategoryResponse {
	return CategoryResponse{
		Key:   string(info.Key),
		Label: info.Label,
		Icon:  info.Icon,
		Color: info.Color,
	}
}

// ToCategoryListResponse converts a ListCategoriesOutput to CategoryListResponse.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, info := range output.Categories {
		categories[i] = ToCategoryResponse(info)
	}
	return CategoryListResponse{
		Categories: categories,
		Fallback:   string(output.Fallback),
	}
}

// ToCategorySuggestionResponse converts a SuggestCategoryOutput to its DTO.
func ToCategorySuggestionResponse(output *category.SuggestCategoryOutput) CategorySuggestionResponse {
	response := CategorySuggestionResponse{
		Category:   ToCategoryResponse(output.Category),
		Confidence: Ratio(output.Confidence),
		Reasoning:  output.Reasoning,
		Fallback:   output.Failure != nil,
	}
	if output.Failure != nil {
		response.Failure = &SuggestionFailureResponse{
			Reason:    output.Failure.Reason,
			Message:   output.Failure.Message,
			Retryable: output.Failure.Retryable,
		}
	}
	return response
}
