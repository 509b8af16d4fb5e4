// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// CoopModel represents the coops table in the database.
type CoopModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name             string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Capacity         int        `gorm:"not null"`
	CurrentOccupancy int        `gorm:"not null;default:0"`
	LastCleaned      *time.Time `gorm:"type:timestamptz"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CoopModel.
func (CoopModel) TableName() string {
	return "coops"
}

// ToEntity converts a CoopModel to a domain Coop entity.
func (m *CoopModel) ToEntity() *entity.Coop {
	return &entity.Coop{
		ID:               m.ID,
		Name:             m.Name,
		Capacity:         m.Capacity,
		CurrentOccupancy: m.CurrentOccupancy,
		LastCleaned:      m.LastCleaned,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// CoopModelFromEntity creates a CoopModel from a domain Coop entity.
func CoopModelFromEntity(coop *entity.Coop) *CoopModel {
	return &CoopModel{
		ID:               coop.ID,
		Name:             coop.Name,
		Capacity:         coop.Capacity,
		CurrentOccupancy: coop.CurrentOccupancy,
		LastCleaned:      coop.LastCleaned,
		CreatedAt:        coop.CreatedAt,
		UpdatedAt:        coop.UpdatedAt,
	}
}

// CageModel represents the cages table in the database.
type CageModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name             string     `gorm:"type:varchar(10);uniqueIndex;not null"`
	CoopID           *uuid.UUID `gorm:"type:uuid;index"`
	Capacity         int        `gorm:"not null"`
	CurrentOccupancy int        `gorm:"not null;default:0"`
	NewChickensCount int        `gorm:"not null;default:0"`
	OldChickensCount int        `gorm:"not null;default:0"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`

	Coop *CoopModel `gorm:"foreignKey:CoopID;references:ID"`
}

// TableName returns the table name for the CageModel.
func (CageModel) TableName() string {
	return "cages"
}

// ToEntity converts a CageModel to a domain Cage entity.
func (m *CageModel) ToEntity() *entity.Cage {
	return &entity.Cage{
		ID:               m.ID,
		Name:             m.Name,
		CoopID:           m.CoopID,
		Capacity:         m.Capacity,
		CurrentOccupancy: m.CurrentOccupancy,
		NewChickensCount: m.NewChickensCount,
		OldChickensCount: m.OldChickensCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// CageModelFromEntity creates a CageModel from a domain Cage entity.
func CageModelFromEntity(cage *entity.Cage) *CageModel {
	return &CageModel{
		ID:               cage.ID,
		Name:             cage.Name,
		CoopID:           cage.CoopID,
		Capacity:         cage.Capacity,
		CurrentOccupancy: cage.CurrentOccupancy,
		NewChickensCount: cage.NewChickensCount,
		OldChickensCount: cage.OldChickensCount,
		CreatedAt:        cage.CreatedAt,
		UpdatedAt:        cage.UpdatedAt,
	}
}

// FeedItemModel represents the feed_items table in the database.
type FeedItemModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type             string          `gorm:"type:varchar(100);not null"`
	ChickenType      string          `gorm:"type:varchar(10);not null;default:'all'"`
	CurrentStock     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DailyConsumption decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ReorderLevel     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CostPerKg        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FeedItemModel.
func (FeedItemModel) TableName() string {
	return "feed_items"
}

// ToEntity converts a FeedItemModel to a domain FeedItem entity.
func (m *FeedItemModel) ToEntity() *entity.FeedItem {
	return &entity.FeedItem{
		ID:               m.ID,
		Type:             m.Type,
		ChickenType:      entity.ChickenType(m.ChickenType),
		CurrentStock:     m.CurrentStock,
		DailyConsumption: m.DailyConsumption,
		ReorderLevel:     m.ReorderLevel,
		CostPerKg:        m.CostPerKg,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FeedItemModelFromEntity creates a FeedItemModel from a domain FeedItem entity.
func FeedItemModelFromEntity(item *entity.FeedItem) *FeedItemModel {
	return &FeedItemModel{
		ID:               item.ID,
		Type:             item.Type,
		ChickenType:      string(item.ChickenType),
		CurrentStock:     item.CurrentStock,
		DailyConsumption: item.DailyConsumption,
		ReorderLevel:     item.ReorderLevel,
		CostPerKg:        item.CostPerKg,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
