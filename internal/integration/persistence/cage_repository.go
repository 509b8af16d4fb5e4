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

// cageRepository implements the adapter.CageRepository interface.
type cageRepository struct {
	db *gorm.DB
}

// NewCageRepository creates a new cage repository instance.
func NewCageRepository(db *gorm.DB) adapter.CageRepository {
	return &cageRepository{
		db: db,
	}
}

// Create creates a new cage in the database.
func (r *cageRepository) Create(ctx context.Context, cage *entity.Cage) error {
	cageModel := model.CageModelFromEntity(cage)
	result := r.db.WithContext(ctx).Create(cageModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a cage by its ID.
func (r *cageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cage, error) {
	var cageModel model.CageModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cageModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCageNotFound
		}
		return nil, result.Error
	}
	return cageModel.ToEntity(), nil
}

// FindAll retrieves all cages ordered by name.
func (r *cageRepository) FindAll(ctx context.Context) ([]*entity.Cage, error) {
	var models []model.CageModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	cages := make([]*entity.Cage, len(models))
	for i, m := range models {
		cages[i] = m.ToEntity()
	}
	return cages, nil
}

// FindByCoop retrieves all cages assigned to a coop.
func (r *cageRepository) FindByCoop(ctx context.Context, coopID uuid.UUID) ([]*entity.Cage, error) {
	var models []model.CageModel
	result := r.db.WithContext(ctx).
		Where("coop_id = ?", coopID).
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	cages := make([]*entity.Cage, len(models))
	for i, m := range models {
		cages[i] = m.ToEntity()
	}
	return cages, nil
}

// ExistsByName checks if a cage with the given name exists.
func (r *cageRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CageModel{}).Where("name = ?", name).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing cage in the database.
func (r *cageRepository) Update(ctx context.Context, cage *entity.Cage) error {
	cageModel := model.CageModelFromEntity(cage)
	result := r.db.WithContext(ctx).Save(cageModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a cage from the database.
func (r *cageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CageModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCageNotFound
	}
	return nil
}
