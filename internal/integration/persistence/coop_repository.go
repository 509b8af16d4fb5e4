// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cluck-and-track/backend/internal/application/adapter"
	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
	"github.com/cluck-and-track/backend/internal/integration/persistence/model"
)

// coopRepository implements the adapter.CoopRepository interface.
type coopRepository struct {
	db *gorm.DB
}

// NewCoopRepository creates a new coop repository instance.
func NewCoopRepository(db *gorm.DB) adapter.CoopRepository {
	return &coopRepository{
		db: db,
	}
}

// Create creates a new coop in the database.
func (r *coopRepository) Create(ctx context.Context, coop *entity.Coop) error {
	coopModel := model.CoopModelFromEntity(coop)
	result := r.db.WithContext(ctx).Create(coopModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a coop by its ID.
func (r *coopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coop, error) {
	var coopModel model.CoopModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&coopModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCoopNotFound
		}
		return nil, result.Error
	}
	return coopModel.ToEntity(), nil
}

// FindAll retrieves all coops ordered by name.
func (r *coopRepository) FindAll(ctx context.Context) ([]*entity.Coop, error) {
	var models []model.CoopModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	coops := make([]*entity.Coop, len(models))
	for i, m := range models {
		coops[i] = m.ToEntity()
	}
	return coops, nil
}

// Update updates an existing coop in the database.
func (r *coopRepository) Update(ctx context.Context, coop *entity.Coop) error {
	coopModel := model.CoopModelFromEntity(coop)
	result := r.db.WithContext(ctx).Save(coopModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a coop from the database.
func (r *coopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CoopModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCoopNotFound
	}
	return nil
}
