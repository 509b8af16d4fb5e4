package eggrecord

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

type stubRecordRepo struct {
	created *entity.EggCollectionRecord
	byID    *entity.EggCollectionRecord
}

func (s *stubRecordRepo) Create(_ context.Context, record *entity.EggCollectionRecord) error {
	s.created = record
	return nil
}

func (s *stubRecordRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.EggCollectionRecord, error) {
	if s.byID == nil {
		return nil, errors.New("record not found")
	}
	return s.byID, nil
}

func (s *stubRecordRepo) FindByFilter(_ context.Context, _ adapter.EggRecordFilter, p adapter.EggRecordPagination) (*adapter.EggRecordListResult, error) {
	return &adapter.EggRecordListResult{Page: p.Page, Limit: p.Limit}, nil
}

func (s *stubRecordRepo) FindByDateRange(_ context.Context, _, _ time.Time) ([]*entity.EggCollectionRecord, error) {
	return nil, nil
}

func (s *stubRecordRepo) FindUnpaidCreditSales(_ context.Context) ([]*entity.EggCollectionRecord, error) {
	return nil, nil
}

func (s *stubRecordRepo) FindOverdueCreditSales(_ context.Context, _ time.Time) ([]*entity.EggCollectionRecord, error) {
	return nil, nil
}

func (s *stubRecordRepo) Update(_ context.Context, record *entity.EggCollectionRecord) error {
	s.byID = record
	return nil
}

func (s *stubRecordRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type stubCageRepo struct {
	names map[string]bool
}

func (s *stubCageRepo) Create(_ context.Context, _ *entity.Cage) error { return nil }
func (s *stubCageRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Cage, error) {
	return nil, errors.New("cage not found")
}
func (s *stubCageRepo) FindAll(_ context.Context) ([]*entity.Cage, error) { return nil, nil }
func (s *stubCageRepo) FindByCoop(_ context.Context, _ uuid.UUID) ([]*entity.Cage, error) {
	return nil, nil
}
func (s *stubCageRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	return s.names[name], nil
}
func (s *stubCageRepo) Update(_ context.Context, _ *entity.Cage) error { return nil }
func (s *stubCageRepo) Delete(_ context.Context, _ uuid.UUID) error    { return nil }

func validInput() CreateRecordInput {
	return CreateRecordInput{
		Date:         time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		CageID:       "A",
		Count:        12,
		Damaged:      1,
		Sold:         5,
		SoldAs:       entity.SoldAsSingle,
		PricePerUnit: decimal.RequireFromString("0.50"),
	}
}

func TestCreateRecordValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRecordInput)
		wantErr error
	}{
		{
			name:    "missing cage",
			mutate:  func(in *CreateRecordInput) { in.CageID = "" },
			wantErr: domainerror.ErrMissingCage,
		},
		{
			name:    "negative count",
			mutate:  func(in *CreateRecordInput) { in.Count = -1 },
			wantErr: domainerror.ErrNegativeCount,
		},
		{
			name: "damaged plus sold exceeds count",
			mutate: func(in *CreateRecordInput) {
				in.Count = 5
				in.Damaged = 3
				in.Sold = 4
			},
			wantErr: domainerror.ErrCountExceeded,
		},
		{
			name:    "invalid sale unit",
			mutate:  func(in *CreateRecordInput) { in.SoldAs = "dozen" },
			wantErr: domainerror.ErrInvalidSoldAs,
		},
		{
			name:    "invalid payment status",
			mutate:  func(in *CreateRecordInput) { in.PaymentStatus = "late" },
			wantErr: domainerror.ErrInvalidPaymentStatus,
		},
		{
			name:    "unknown cage",
			mutate:  func(in *CreateRecordInput) { in.CageID = "Z" },
			wantErr: domainerror.ErrMissingCage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateRecordUseCase(&stubRecordRepo{}, &stubCageRepo{names: map[string]bool{"A": true}})

			input := validInput()
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if err == nil {
				t.Fatal("Execute() expected error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateRecordDefaultsCreditSaleToPending(t *testing.T) {
	repo := &stubRecordRepo{}
	uc := NewCreateRecordUseCase(repo, &stubCageRepo{names: map[string]bool{"A": true}})

	input := validInput()
	input.BuyerName = "John"
	due := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	input.PaymentDue = &due

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out.Record.PaymentStatus != entity.PaymentStatusPending {
		t.Errorf("PaymentStatus = %s, want pending", out.Record.PaymentStatus)
	}
	if repo.created == nil {
		t.Fatal("record was not persisted")
	}
	if out.Record.Leftover != 6 {
		t.Errorf("Leftover = %d, want 6", out.Record.Leftover)
	}
	if !out.Record.SaleAmount.Equal(decimal.RequireFromString("2.50")) {
		t.Errorf("SaleAmount = %s, want 2.50", out.Record.SaleAmount)
	}
}

func TestUpdatePaymentStatusMarksPaid(t *testing.T) {
	record := entity.NewEggCollectionRecord(
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		"A", 12, false, 0, 0, 12,
		entity.SoldAsSingle, decimal.RequireFromString("0.50"),
	)
	record.BuyerName = "John"
	record.PaymentStatus = entity.PaymentStatusPending

	repo := &stubRecordRepo{byID: record}
	uc := NewUpdatePaymentStatusUseCase(repo)

	out, err := uc.Execute(context.Background(), UpdatePaymentStatusInput{
		ID:     record.ID,
		Status: entity.PaymentStatusPaid,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Record.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("PaymentStatus = %s, want paid", out.Record.PaymentStatus)
	}
}

func TestUpdatePaymentStatusRejectsUnknownStatus(t *testing.T) {
	uc := NewUpdatePaymentStatusUseCase(&stubRecordRepo{})

	_, err := uc.Execute(context.Background(), UpdatePaymentStatusInput{
		ID:     uuid.New(),
		Status: "written-off",
	})
	if !errors.Is(err, domainerror.ErrInvalidPaymentStatus) {
		t.Errorf("error = %v, want ErrInvalidPaymentStatus", err)
	}
}
