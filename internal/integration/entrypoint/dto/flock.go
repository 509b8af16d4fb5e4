// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cluck-and-track/backend/internal/application/usecase/flock"
)

// CreateCoopRequest represents the request body for creating a coop.
type CreateCoopRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

// CreateCageRequest represents the request body for creating a cage.
type CreateCageRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=10"`
	CoopID      *string `json:"coop_id,omitempty"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	NewChickens int     `json:"new_chickens,omitempty" binding:"omitempty,min=0"`
	OldChickens int     `json:"old_chickens,omitempty" binding:"omitempty,min=0"`
}

// CreateFeedItemRequest represents the request body for creating a feed item.
type CreateFeedItemRequest struct {
	Type             string  `json:"type" binding:"required,min=1,max=100"`
	ChickenType      string  `json:"chicken_type,omitempty" binding:"omitempty,oneof=new old all"`
	CurrentStock     float64 `json:"current_stock,omitempty"`
	DailyConsumption float64 `json:"daily_consumption,omitempty"`
	ReorderLevel     float64 `json:"reorder_level,omitempty"`
	CostPerKg        float64 `json:"cost_per_kg,omitempty"`
}

// AdjustFeedStockRequest represents the request body for adding or consuming feed stock.
type AdjustFeedStockRequest struct {
	Kilograms   float64 `json:"kilograms" binding:"required"`
	BookExpense bool    `json:"book_expense,omitempty"`
}

// CoopResponse represents a coop in API responses.
type CoopResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Capacity         int        `json:"capacity"`
	CurrentOccupancy int        `json:"current_occupancy"`
	LastCleaned      *time.Time `json:"last_cleaned,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CoopListResponse represents the response for listing coops.
type CoopListResponse struct {
	Coops []CoopResponse `json:"coops"`
}

// CageResponse represents a cage in API responses.
type CageResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	CoopID           *string   `json:"coop_id,omitempty"`
	Capacity         int       `json:"capacity"`
	CurrentOccupancy int       `json:"current_occupancy"`
	NewChickensCount int       `json:"new_chickens_count"`
	OldChickensCount int       `json:"old_chickens_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CageListResponse represents the response for listing cages.
type CageListResponse struct {
	Cages []CageResponse `json:"cages"`
}

// FeedItemResponse represents a feed item in API responses.
type FeedItemResponse struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	ChickenType      string    `json:"chicken_type"`
	CurrentStock     string    `json:"current_stock"`
	DailyConsumption string    `json:"daily_consumption"`
	ReorderLevel     string    `json:"reorder_level"`
	CostPerKg        string    `json:"cost_per_kg"`
	NeedsReorder     bool      `json:"needs_reorder"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FeedItemListResponse represents the response for listing feed items.
type FeedItemListResponse struct {
	FeedItems []FeedItemResponse `json:"feed_items"`
}

// ToCoopResponse converts a use case coop output to a CoopResponse DTO.
func ToCoopResponse(coop *flock.CoopOutput) CoopResponse {
	return CoopResponse{
		ID:               coop.ID.String(),
		Name:             coop.Name,
		Capacity:         coop.Capacity,
		CurrentOccupancy: coop.CurrentOccupancy,
		LastCleaned:      coop.LastCleaned,
		CreatedAt:        coop.CreatedAt,
		UpdatedAt:        coop.UpdatedAt,
	}
}

// ToCageResponse converts a use case cage output to a CageResponse DTO.
func ToCageResponse(cage *flock.CageOutput) CageResponse {
	var coopID *string
	if cage.CoopID != nil {
		id := cage.CoopID.String()
		coopID = &id
	}

	return CageResponse{
		ID:               cage.ID.String(),
		Name:             cage.Name,
		CoopID:           coopID,
		Capacity:         cage.Capacity,
		CurrentOccupancy: cage.CurrentOccupancy,
		NewChickensCount: cage.NewChickensCount,
		OldChickensCount: cage.OldChickensCount,
		CreatedAt:        cage.CreatedAt,
		UpdatedAt:        cage.UpdatedAt,
	}
}

// ToFeedItemResponse converts a use case feed item output to a FeedItemResponse DTO.
func ToFeedItemResponse(item *flock.FeedItemOutput) FeedItemResponse {
	return FeedItemResponse{
		ID:               item.ID.String(),
		Type:             item.Type,
		ChickenType:      string(item.ChickenType),
		CurrentStock:     item.CurrentStock.StringFixed(2),
		DailyConsumption: item.DailyConsumption.StringFixed(2),
		ReorderLevel:     item.ReorderLevel.StringFixed(2),
		CostPerKg:        item.CostPerKg.StringFixed(2),
		NeedsReorder:     item.NeedsReorder,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
