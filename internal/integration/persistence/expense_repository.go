// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
	"github.com/cluck-and-track/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseModelFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByDateRange retrieves all expenses inside the closed interval, ordered by date.
func (r *expenseRepository) FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(models))
	for i, m := range models {
		expenses[i] = m.ToEntity()
	}
	return expenses, nil
}

// FindByCategoryAndDateRange retrieves expenses of one category inside the interval.
func (r *expenseRepository) FindByCategoryAndDateRange(ctx context.Context, category string, startDate, endDate time.Time) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("category = ?", category).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(models))
	for i, m := range models {
		expenses[i] = m.ToEntity()
	}
	return expenses, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseModelFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}
