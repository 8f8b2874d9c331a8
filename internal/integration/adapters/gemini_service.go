// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/budget-planner/backend/internal/application/adapter"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

var errEmptyResponse = errors.New("empty response from gemini")

// GeminiService implements the CategorySuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks Gemini for the category that best fits the transaction.
func (s *GeminiService) Suggest(ctx context.Context, request *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildSuggestionPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	suggestion, err := parseSuggestion(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return suggestion, nil
}

func buildSuggestionPrompt(request *adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You categorize personal finance transactions.
Pick exactly one category for the transaction below from the allowed list.
If nothing fits, answer "other".

ALLOWED CATEGORIES:
`)
	for _, c := range request.Candidates {
		sb.WriteString("- " + c + "\n")
	}

	direction := "expense"
	if !request.IsExpense {
		direction = "income"
	}
	sb.WriteString("\nTRANSACTION:\n")
	sb.WriteString(fmt.Sprintf("- Title: %q, Amount: %.2f, Type: %s\n", request.Title, request.Amount, direction))

	sb.WriteString(`
Respond with a single JSON object:
{
  "category": "one key from the allowed list",
  "confidence": 0.0-1.0,
  "reasoning": "short explanation"
}

RESPONSE FORMAT: return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errEmptyResponse
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && strings.TrimSpace(string(text)) != "" {
			return string(text), nil
		}
	}
	return "", errEmptyResponse
}

// parseSuggestion decodes the model answer, tolerating markdown code fences.
func parseSuggestion(text string) (*adapter.CategorySuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	category := strings.TrimSpace(raw.Category)
	if category == "" {
		return nil, fmt.Errorf("response has no category")
	}

	return &adapter.CategorySuggestion{
		Category:   category,
		Confidence: raw.Confidence,
		Reasoning:  strings.TrimSpace(raw.Reasoning),
	}, nil
}
