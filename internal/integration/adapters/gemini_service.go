// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/cluck-and-track/backend/internal/application/adapter"
)

// GeminiService implements the CategorySuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest analyzes an expense description and returns a category suggestion.
func (s *GeminiService) Suggest(ctx context.Context, request *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	// Create client
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	// Get the model
	model := client.GenerativeModel(s.modelName)

	// Configure model for JSON output
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp, request)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing expenses for small poultry farms. Your task is to assign the most fitting category to a farm expense.

RULES:
- You MUST pick a category from the list of available categories below. Do not invent new category names.
- Base the choice on the expense description first; use the amount only as a tiebreaker.
- If nothing fits well, pick "other" with a low confidence score.

AVAILABLE CATEGORIES:
`)

	for _, category := range request.Categories {
		sb.WriteString(fmt.Sprintf("- %s\n", category))
	}

	sb.WriteString("\nEXPENSE TO CATEGORIZE:\n")
	sb.WriteString(fmt.Sprintf("- Description: \"%s\", Amount: %s\n", request.Description, request.Amount))

	sb.WriteString(`
Respond with a single JSON object:
{
  "category": "one of the available categories",
  "confidence": 0.0-1.0,
  "reasoning": "brief explanation"
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseResponse parses the Gemini response into a CategorySuggestionResult.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse, request *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestionResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	// Get the text content from the response
	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestion geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestion); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	// The model occasionally returns a category outside the requested list
	if !s.isKnownCategory(suggestion.Category, request.Categories) {
		suggestion.Category = "other"
		suggestion.Confidence = 0
	}

	if suggestion.Confidence < 0 {
		suggestion.Confidence = 0
	}
	if suggestion.Confidence > 1 {
		suggestion.Confidence = 1
	}

	return &adapter.CategorySuggestionResult{
		Category:   suggestion.Category,
		Confidence: suggestion.Confidence,
		Reasoning:  suggestion.Reasoning,
	}, nil
}

func (s *GeminiService) isKnownCategory(category string, categories []string) bool {
	for _, c := range categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
