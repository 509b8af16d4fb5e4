package flock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
)

type stubFeedRepo struct {
	item *entity.FeedItem
}

func (s *stubFeedRepo) Create(_ context.Context, item *entity.FeedItem) error {
	s.item = item
	return nil
}

func (s *stubFeedRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.FeedItem, error) {
	if s.item == nil {
		return nil, errors.New("feed item not found")
	}
	return s.item, nil
}

func (s *stubFeedRepo) FindAll(_ context.Context) ([]*entity.FeedItem, error) {
	if s.item == nil {
		return nil, nil
	}
	return []*entity.FeedItem{s.item}, nil
}

func (s *stubFeedRepo) FindBelowReorderLevel(_ context.Context) ([]*entity.FeedItem, error) {
	return nil, nil
}

func (s *stubFeedRepo) Update(_ context.Context, item *entity.FeedItem) error {
	s.item = item
	return nil
}

func (s *stubFeedRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type recordingExpenseRepo struct {
	created *entity.Expense
}

func (r *recordingExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.created = expense
	return nil
}

func (r *recordingExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, errors.New("expense not found")
}

func (r *recordingExpenseRepo) FindByDateRange(_ context.Context, _, _ time.Time) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *recordingExpenseRepo) FindByCategoryAndDateRange(_ context.Context, _ string, _, _ time.Time) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *recordingExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return nil }
func (r *recordingExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

func layersMash(stock string) *entity.FeedItem {
	return entity.NewFeedItem(
		"layers mash",
		entity.ChickenTypeAll,
		decimal.RequireFromString(stock),
		decimal.RequireFromString("5"),
		decimal.RequireFromString("20"),
		decimal.RequireFromString("0.80"),
	)
}

func TestAddFeedStockBooksExpense(t *testing.T) {
	feedRepo := &stubFeedRepo{item: layersMash("10")}
	expenseRepo := &recordingExpenseRepo{}

	uc := NewAddFeedStockUseCase(feedRepo, expenseRepo)

	out, err := uc.Execute(context.Background(), AddFeedStockInput{
		FeedItemID:  feedRepo.item.ID,
		UserID:      uuid.New(),
		Kilograms:   decimal.RequireFromString("50"),
		BookExpense: true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !out.FeedItem.CurrentStock.Equal(decimal.RequireFromString("60")) {
		t.Errorf("CurrentStock = %s, want 60", out.FeedItem.CurrentStock)
	}
	if expenseRepo.created == nil {
		t.Fatal("feed expense was not booked")
	}
	if expenseRepo.created.Category != entity.FeedCategory {
		t.Errorf("expense category = %q, want %q", expenseRepo.created.Category, entity.FeedCategory)
	}
	// 50 kg at 0.80 per kg.
	if !expenseRepo.created.Amount.Equal(decimal.RequireFromString("40.00")) {
		t.Errorf("expense amount = %s, want 40.00", expenseRepo.created.Amount)
	}
}

func TestAddFeedStockWithoutExpense(t *testing.T) {
	feedRepo := &stubFeedRepo{item: layersMash("10")}
	expenseRepo := &recordingExpenseRepo{}

	uc := NewAddFeedStockUseCase(feedRepo, expenseRepo)

	_, err := uc.Execute(context.Background(), AddFeedStockInput{
		FeedItemID: feedRepo.item.ID,
		Kilograms:  decimal.RequireFromString("5"),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if expenseRepo.created != nil {
		t.Error("expense should not have been booked")
	}
}

func TestConsumeFeedStockInsufficient(t *testing.T) {
	feedRepo := &stubFeedRepo{item: layersMash("10")}

	uc := NewConsumeFeedStockUseCase(feedRepo)

	_, err := uc.Execute(context.Background(), ConsumeFeedStockInput{
		FeedItemID: feedRepo.item.ID,
		Kilograms:  decimal.RequireFromString("15"),
	})
	if !errors.Is(err, domainerror.ErrInsufficientFeedStock) {
		t.Errorf("error = %v, want ErrInsufficientFeedStock", err)
	}
}

func TestConsumeFeedStockCrossesReorderLevel(t *testing.T) {
	feedRepo := &stubFeedRepo{item: layersMash("25")}

	uc := NewConsumeFeedStockUseCase(feedRepo)

	out, err := uc.Execute(context.Background(), ConsumeFeedStockInput{
		FeedItemID: feedRepo.item.ID,
		Kilograms:  decimal.RequireFromString("10"),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !out.FeedItem.NeedsReorder {
		t.Error("item at 15 kg with reorder level 20 should need reorder")
	}
}
