// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cluck-and-track/backend/internal/application/usecase/eggrecord"
)

// CreateEggRecordRequest represents the request body for creating an egg collection record.
type CreateEggRecordRequest struct {
	Date              string  `json:"date" binding:"required"`
	CageID            string  `json:"cage_id" binding:"required,min=1,max=10"`
	Count             int     `json:"count" binding:"min=0"`
	IsFromNewChickens bool    `json:"is_from_new_chickens,omitempty"`
	Damaged           int     `json:"damaged,omitempty" binding:"omitempty,min=0"`
	Spoiled           int     `json:"spoiled,omitempty" binding:"omitempty,min=0"`
	Sold              int     `json:"sold,omitempty" binding:"omitempty,min=0"`
	SoldAs            string  `json:"sold_as,omitempty" binding:"omitempty,oneof=single crate"`
	PricePerUnit      float64 `json:"price_per_unit,omitempty"`
	PaymentDue        *string `json:"payment_due,omitempty"`
	PaymentStatus     string  `json:"payment_status,omitempty" binding:"omitempty,oneof=paid pending overdue"`
	BuyerName         string  `json:"buyer_name,omitempty" binding:"omitempty,max=100"`
	Notes             string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateEggRecordRequest represents the request body for updating an egg collection record.
type UpdateEggRecordRequest struct {
	Date              string  `json:"date" binding:"required"`
	CageID            string  `json:"cage_id" binding:"required,min=1,max=10"`
	Count             int     `json:"count" binding:"min=0"`
	IsFromNewChickens bool    `json:"is_from_new_chickens,omitempty"`
	Damaged           int     `json:"damaged,omitempty" binding:"omitempty,min=0"`
	Spoiled           int     `json:"spoiled,omitempty" binding:"omitempty,min=0"`
	Sold              int     `json:"sold,omitempty" binding:"omitempty,min=0"`
	SoldAs            string  `json:"sold_as,omitempty" binding:"omitempty,oneof=single crate"`
	PricePerUnit      float64 `json:"price_per_unit,omitempty"`
	PaymentDue        *string `json:"payment_due,omitempty"`
	PaymentStatus     string  `json:"payment_status,omitempty" binding:"omitempty,oneof=paid pending overdue"`
	BuyerName         string  `json:"buyer_name,omitempty" binding:"omitempty,max=100"`
	Notes             string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdatePaymentStatusRequest represents the request body for updating a payment status.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=paid pending overdue"`
}

// EggRecordResponse represents an egg collection record in API responses.
type EggRecordResponse struct {
	ID                string    `json:"id"`
	Date              string    `json:"date"`
	CageID            string    `json:"cage_id"`
	Count             int       `json:"count"`
	IsFromNewChickens bool      `json:"is_from_new_chickens"`
	Damaged           int       `json:"damaged"`
	Spoiled           int       `json:"spoiled"`
	Sold              int       `json:"sold"`
	Leftover          int       `json:"leftover"`
	SoldAs            string    `json:"sold_as,omitempty"`
	PricePerUnit      string    `json:"price_per_unit"`
	SaleAmount        string    `json:"sale_amount"`
	PaymentDue        *string   `json:"payment_due,omitempty"`
	PaymentStatus     string    `json:"payment_status,omitempty"`
	BuyerName         string    `json:"buyer_name,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PaginationResponse represents pagination metadata in list responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// EggRecordListResponse represents the response for listing egg collection records.
type EggRecordListResponse struct {
	Records    []EggRecordResponse `json:"records"`
	Pagination PaginationResponse  `json:"pagination"`
}

// ToEggRecordResponse converts a use case record output to an EggRecordResponse DTO.
func ToEggRecordResponse(record *eggrecord.RecordOutput) EggRecordResponse {
	var paymentDue *string
	if record.PaymentDue != nil {
		due := record.PaymentDue.Format("2006-01-02")
		paymentDue = &due
	}

	return EggRecordResponse{
		ID:                record.ID.String(),
		Date:              record.Date.Format("2006-01-02"),
		CageID:            record.CageID,
		Count:             record.Count,
		IsFromNewChickens: record.IsFromNewChickens,
		Damaged:           record.Damaged,
		Spoiled:           record.Spoiled,
		Sold:              record.Sold,
		Leftover:          record.Leftover,
		SoldAs:            string(record.SoldAs),
		PricePerUnit:      record.PricePerUnit.StringFixed(2),
		SaleAmount:        record.SaleAmount.StringFixed(2),
		PaymentDue:        paymentDue,
		PaymentStatus:     string(record.PaymentStatus),
		BuyerName:         record.BuyerName,
		Notes:             record.Notes,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}
