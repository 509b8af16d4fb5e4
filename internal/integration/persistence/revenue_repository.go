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

// revenueRepository implements the adapter.RevenueRepository interface.
type revenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository creates a new revenue repository instance.
func NewRevenueRepository(db *gorm.DB) adapter.RevenueRepository {
	return &revenueRepository{
		db: db,
	}
}

// Create creates a new revenue in the database.
func (r *revenueRepository) Create(ctx context.Context, revenue *entity.Revenue) error {
	revenueModel := model.RevenueModelFromEntity(revenue)
	result := r.db.WithContext(ctx).Create(revenueModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a revenue by its ID.
func (r *revenueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Revenue, error) {
	var revenueModel model.RevenueModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&revenueModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRevenueNotFound
		}
		return nil, result.Error
	}
	return revenueModel.ToEntity(), nil
}

// FindByDateRange retrieves all revenues inside the closed interval, ordered by date.
func (r *revenueRepository) FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.Revenue, error) {
	var models []model.RevenueModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	revenues := make([]*entity.Revenue, len(models))
	for i, m := range models {
		revenues[i] = m.ToEntity()
	}
	return revenues, nil
}

// Update updates an existing revenue in the database.
func (r *revenueRepository) Update(ctx context.Context, revenue *entity.Revenue) error {
	revenueModel := model.RevenueModelFromEntity(revenue)
	result := r.db.WithContext(ctx).Save(revenueModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a revenue from the database.
func (r *revenueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RevenueModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRevenueNotFound
	}
	return nil
}
