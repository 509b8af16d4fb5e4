// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Coop represents a chicken house grouping several cages.
type Coop struct {
	ID               uuid.UUID
	Name             string
	Capacity         int
	CurrentOccupancy int
	LastCleaned      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewCoop creates a new Coop entity.
func NewCoop(name string, capacity int) *Coop {
	now := time.Now().UTC()

	return &Coop{
		ID:        uuid.New(),
		Name:      name,
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Cage represents a single cage inside a coop. Cage names are the short
// identifiers egg-collection records reference (A to Z on the original farm).
type Cage struct {
	ID               uuid.UUID
	Name             string
	CoopID           *uuid.UUID
	Capacity         int
	CurrentOccupancy int
	NewChickensCount int
	OldChickensCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewCage creates a new Cage entity.
func NewCage(name string, coopID *uuid.UUID, capacity, newChickens, oldChickens int) *Cage {
	now := time.Now().UTC()

	return &Cage{
		ID:               uuid.New(),
		Name:             name,
		CoopID:           coopID,
		Capacity:         capacity,
		CurrentOccupancy: newChickens + oldChickens,
		NewChickensCount: newChickens,
		OldChickensCount: oldChickens,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ChickenType tags which age cohort a feed type is meant for.
type ChickenType string

const (
	ChickenTypeNew ChickenType = "new"
	ChickenTypeOld ChickenType = "old"
	ChickenTypeAll ChickenType = "all"
)

// FeedItem represents one feed type in the inventory, tracked in kilograms.
type FeedItem struct {
	ID               uuid.UUID
	Type             string
	ChickenType      ChickenType
	CurrentStock     decimal.Decimal
	DailyConsumption decimal.Decimal
	ReorderLevel     decimal.Decimal
	CostPerKg        decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewFeedItem creates a new FeedItem entity.
func NewFeedItem(feedType string, chickenType ChickenType, currentStock, dailyConsumption, reorderLevel, costPerKg decimal.Decimal) *FeedItem {
	now := time.Now().UTC()

	return &FeedItem{
		ID:               uuid.New(),
		Type:             feedType,
		ChickenType:      chickenType,
		CurrentStock:     currentStock,
		DailyConsumption: dailyConsumption,
		ReorderLevel:     reorderLevel,
		CostPerKg:        costPerKg,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// NeedsReorder reports whether the stock has fallen to the reorder level.
func (f *FeedItem) NeedsReorder() bool {
	return f.CurrentStock.LessThanOrEqual(f.ReorderLevel)
}
