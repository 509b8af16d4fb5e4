package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

type stubExpenseRepo struct {
	created  *entity.Expense
	expenses []*entity.Expense
}

func (s *stubExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	s.created = expense
	return nil
}

func (s *stubExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, errors.New("expense not found")
}

func (s *stubExpenseRepo) FindByDateRange(_ context.Context, _, _ time.Time) ([]*entity.Expense, error) {
	return s.expenses, nil
}

func (s *stubExpenseRepo) FindByCategoryAndDateRange(_ context.Context, category string, _, _ time.Time) ([]*entity.Expense, error) {
	var filtered []*entity.Expense
	for _, expense := range s.expenses {
		if expense.Category == category {
			filtered = append(filtered, expense)
		}
	}
	return filtered, nil
}

func (s *stubExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return nil }
func (s *stubExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

func TestCreateExpenseValidation(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		description string
		wantErr     error
	}{
		{"zero amount", "0", "feed bags", domainerror.ErrNonPositiveAmount},
		{"negative amount", "-5", "feed bags", domainerror.ErrNonPositiveAmount},
		{"missing description", "10", "", domainerror.ErrMissingDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateExpenseUseCase(&stubExpenseRepo{})

			_, err := uc.Execute(context.Background(), CreateExpenseInput{
				UserID:      uuid.New(),
				Amount:      decimal.RequireFromString(tt.amount),
				Description: tt.description,
				Date:        time.Now(),
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateExpensePersistsAndDefaultsCategory(t *testing.T) {
	repo := &stubExpenseRepo{}
	uc := NewCreateExpenseUseCase(repo)

	out, err := uc.Execute(context.Background(), CreateExpenseInput{
		UserID:      uuid.New(),
		Amount:      decimal.RequireFromString("35.00"),
		Description: "vaccination",
		Date:        time.Now(),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if repo.created == nil {
		t.Fatal("expense was not persisted")
	}
	if out.Expense.Category != entity.UncategorizedLabel {
		t.Errorf("Category = %q, want %q", out.Expense.Category, entity.UncategorizedLabel)
	}
}

func TestListExpensesFiltersByCategory(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubExpenseRepo{expenses: []*entity.Expense{
		entity.NewExpense(userID, decimal.NewFromInt(40), "layers mash", entity.FeedCategory, day),
		entity.NewExpense(userID, decimal.NewFromInt(15), "antibiotics", "medicine", day),
	}}

	uc := NewListExpensesUseCase(repo)

	out, err := uc.Execute(context.Background(), ListExpensesInput{Category: entity.FeedCategory})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(out.Expenses) != 1 {
		t.Fatalf("expenses = %d, want 1", len(out.Expenses))
	}
	if !out.Total.Equal(decimal.NewFromInt(40)) {
		t.Errorf("Total = %s, want 40", out.Total)
	}
}

type stubSuggestionService struct {
	available bool
	result    *adapter.CategorySuggestionResult
}

func (s *stubSuggestionService) Suggest(_ context.Context, _ *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestionResult, error) {
	return s.result, nil
}

func (s *stubSuggestionService) IsAvailable() bool { return s.available }

func TestSuggestCategoryUnavailable(t *testing.T) {
	uc := NewSuggestCategoryUseCase(&stubSuggestionService{available: false})

	_, err := uc.Execute(context.Background(), SuggestCategoryInput{
		Description: "50kg layers mash",
		Amount:      decimal.NewFromInt(40),
	})
	if !errors.Is(err, domainerror.ErrSuggestionUnavailable) {
		t.Errorf("error = %v, want ErrSuggestionUnavailable", err)
	}
}

func TestSuggestCategoryReturnsResult(t *testing.T) {
	uc := NewSuggestCategoryUseCase(&stubSuggestionService{
		available: true,
		result: &adapter.CategorySuggestionResult{
			Category:   "feed",
			Confidence: 0.92,
			Reasoning:  "mentions layers mash",
		},
	})

	out, err := uc.Execute(context.Background(), SuggestCategoryInput{
		Description: "50kg layers mash",
		Amount:      decimal.NewFromInt(40),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Category != "feed" || out.Confidence != 0.92 {
		t.Errorf("suggestion = %+v", out)
	}
}
