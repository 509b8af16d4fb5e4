// Package finance contains expense and revenue use cases.
package finance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

// DefaultExpenseCategories are the categories offered to the suggestion
// service. They mirror what the farm actually spends money on.
var DefaultExpenseCategories = []string{
	"feed",
	"medicine",
	"equipment",
	"labor",
	"utilities",
	"maintenance",
	"chicks",
	"packaging",
	"transport",
	"other",
}

// SuggestCategoryInput represents the input for category suggestion.
type SuggestCategoryInput struct {
	Description string
	Amount      decimal.Decimal
}

// SuggestCategoryOutput represents the output of category suggestion.
type SuggestCategoryOutput struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// SuggestCategoryUseCase asks the AI service for an expense category.
type SuggestCategoryUseCase struct {
	suggestionService adapter.CategorySuggestionService
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(suggestionService adapter.CategorySuggestionService) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		suggestionService: suggestionService,
	}
}

// Execute performs the category suggestion.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if input.Description == "" {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}

	if !uc.suggestionService.IsAvailable() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion is unavailable",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	result, err := uc.suggestionService.Suggest(ctx, &adapter.CategorySuggestionRequest{
		Description: input.Description,
		Amount:      input.Amount.String(),
		Categories:  DefaultExpenseCategories,
	})
	if err != nil {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion failed",
			err,
		)
	}

	return &SuggestCategoryOutput{
		Category:   result.Category,
		Confidence: result.Confidence,
		Reasoning:  result.Reasoning,
	}, nil
}
