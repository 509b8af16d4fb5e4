// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// CategorySuggestionRequest represents an expense description to categorize.
type CategorySuggestionRequest struct {
	Description string
	Amount      string
	Categories  []string
}

// CategorySuggestionResult represents the AI's category suggestion.
type CategorySuggestionResult struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// CategorySuggestionService defines the interface for AI-assisted expense categorization.
type CategorySuggestionService interface {
	// Suggest proposes a category for an expense description.
	Suggest(ctx context.Context, request *CategorySuggestionRequest) (*CategorySuggestionResult, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
