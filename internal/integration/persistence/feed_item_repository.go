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

// feedItemRepository implements the adapter.FeedItemRepository interface.
type feedItemRepository struct {
	db *gorm.DB
}

// NewFeedItemRepository creates a new feed item repository instance.
func NewFeedItemRepository(db *gorm.DB) adapter.FeedItemRepository {
	return &feedItemRepository{
		db: db,
	}
}

// Create creates a new feed item in the database.
func (r *feedItemRepository) Create(ctx context.Context, item *entity.FeedItem) error {
	itemModel := model.FeedItemModelFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a feed item by its ID.
func (r *feedItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FeedItem, error) {
	var itemModel model.FeedItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFeedNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindAll retrieves all feed items ordered by type.
func (r *feedItemRepository) FindAll(ctx context.Context) ([]*entity.FeedItem, error) {
	var models []model.FeedItemModel
	result := r.db.WithContext(ctx).Order("type ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.FeedItem, len(models))
	for i, m := range models {
		items[i] = m.ToEntity()
	}
	return items, nil
}

// FindBelowReorderLevel retrieves feed items at or below their reorder level.
func (r *feedItemRepository) FindBelowReorderLevel(ctx context.Context) ([]*entity.FeedItem, error) {
	var models []model.FeedItemModel
	result := r.db.WithContext(ctx).
		Where("current_stock <= reorder_level").
		Order("type ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.FeedItem, len(models))
	for i, m := range models {
		items[i] = m.ToEntity()
	}
	return items, nil
}

// Update updates an existing feed item in the database.
func (r *feedItemRepository) Update(ctx context.Context, item *entity.FeedItem) error {
	itemModel := model.FeedItemModelFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a feed item from the database.
func (r *feedItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FeedItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFeedNotFound
	}
	return nil
}
