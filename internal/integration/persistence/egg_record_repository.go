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

// eggRecordRepository implements the adapter.EggRecordRepository interface.
type eggRecordRepository struct {
	db *gorm.DB
}

// NewEggRecordRepository creates a new egg record repository instance.
func NewEggRecordRepository(db *gorm.DB) adapter.EggRecordRepository {
	return &eggRecordRepository{
		db: db,
	}
}

// Create creates a new egg collection record in the database.
func (r *eggRecordRepository) Create(ctx context.Context, record *entity.EggCollectionRecord) error {
	recordModel := model.EggRecordModelFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an egg collection record by its ID.
func (r *eggRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EggCollectionRecord, error) {
	var recordModel model.EggRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByFilter retrieves records based on filter criteria with pagination.
func (r *eggRecordRepository) FindByFilter(ctx context.Context, filter adapter.EggRecordFilter, pagination adapter.EggRecordPagination) (*adapter.EggRecordListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.EggRecordModel{})

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.CageID != "" {
		query = query.Where("cage_id = ?", filter.CageID)
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", string(*filter.PaymentStatus))
	}
	if filter.CreditOnly {
		query = query.Where("buyer_name <> '' AND sold > 0 AND price_per_unit > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit

	var models []model.EggRecordModel
	result := query.
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.EggCollectionRecord, len(models))
	for i, m := range models {
		records[i] = m.ToEntity()
	}

	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	return &adapter.EggRecordListResult{
		Records:    records,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// FindByDateRange retrieves all records inside the closed interval, ordered by date.
func (r *eggRecordRepository) FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.EggCollectionRecord, error) {
	var models []model.EggRecordModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.EggCollectionRecord, len(models))
	for i, m := range models {
		records[i] = m.ToEntity()
	}
	return records, nil
}

// FindUnpaidCreditSales retrieves credit sale records whose status is not paid.
func (r *eggRecordRepository) FindUnpaidCreditSales(ctx context.Context) ([]*entity.EggCollectionRecord, error) {
	var models []model.EggRecordModel
	result := r.db.WithContext(ctx).
		Where("buyer_name <> '' AND sold > 0 AND price_per_unit > 0").
		Where("payment_status <> ?", string(entity.PaymentStatusPaid)).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.EggCollectionRecord, len(models))
	for i, m := range models {
		records[i] = m.ToEntity()
	}
	return records, nil
}

// FindOverdueCreditSales retrieves unpaid credit sales due before the given moment.
func (r *eggRecordRepository) FindOverdueCreditSales(ctx context.Context, before time.Time) ([]*entity.EggCollectionRecord, error) {
	var models []model.EggRecordModel
	result := r.db.WithContext(ctx).
		Where("buyer_name <> '' AND sold > 0 AND price_per_unit > 0").
		Where("payment_status <> ?", string(entity.PaymentStatusPaid)).
		Where("payment_due IS NOT NULL AND payment_due < ?", before).
		Order("payment_due ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.EggCollectionRecord, len(models))
	for i, m := range models {
		records[i] = m.ToEntity()
	}
	return records, nil
}

// Update updates an existing egg collection record in the database.
func (r *eggRecordRepository) Update(ctx context.Context, record *entity.EggCollectionRecord) error {
	recordModel := model.EggRecordModelFromEntity(record)
	result := r.db.WithContext(ctx).Save(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an egg collection record from the database.
func (r *eggRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.EggRecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
