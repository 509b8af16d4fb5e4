// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// EggRecordModel represents the egg_records table in the database.
type EggRecordModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date              time.Time       `gorm:"type:date;not null;index"`
	CageID            string          `gorm:"type:varchar(10);not null;index"`
	Count             int             `gorm:"not null"`
	IsFromNewChickens bool            `gorm:"default:false"`
	Damaged           int             `gorm:"not null;default:0"`
	Spoiled           int             `gorm:"not null;default:0"`
	Sold              int             `gorm:"not null;default:0"`
	SoldAs            string          `gorm:"type:varchar(10)"`
	PricePerUnit      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PaymentDue        *time.Time      `gorm:"type:date;index"`
	PaymentStatus     string          `gorm:"type:varchar(10);index"`
	BuyerName         string          `gorm:"type:varchar(100)"`
	Notes             string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the EggRecordModel.
func (EggRecordModel) TableName() string {
	return "egg_records"
}

// ToEntity converts an EggRecordModel to a domain EggCollectionRecord entity.
func (m *EggRecordModel) ToEntity() *entity.EggCollectionRecord {
	return &entity.EggCollectionRecord{
		ID:                m.ID,
		Date:              m.Date,
		CageID:            m.CageID,
		Count:             m.Count,
		IsFromNewChickens: m.IsFromNewChickens,
		Damaged:           m.Damaged,
		Spoiled:           m.Spoiled,
		Sold:              m.Sold,
		SoldAs:            entity.SoldAs(m.SoldAs),
		PricePerUnit:      m.PricePerUnit,
		PaymentDue:        m.PaymentDue,
		PaymentStatus:     entity.PaymentStatus(m.PaymentStatus),
		BuyerName:         m.BuyerName,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// EggRecordModelFromEntity creates an EggRecordModel from a domain entity.
func EggRecordModelFromEntity(record *entity.EggCollectionRecord) *EggRecordModel {
	return &EggRecordModel{
		ID:                record.ID,
		Date:              record.Date,
		CageID:            record.CageID,
		Count:             record.Count,
		IsFromNewChickens: record.IsFromNewChickens,
		Damaged:           record.Damaged,
		Spoiled:           record.Spoiled,
		Sold:              record.Sold,
		SoldAs:            string(record.SoldAs),
		PricePerUnit:      record.PricePerUnit,
		PaymentDue:        record.PaymentDue,
		PaymentStatus:     string(record.PaymentStatus),
		BuyerName:         record.BuyerName,
		Notes:             record.Notes,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}
