// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SoldAs represents the unit an egg sale was made in.
type SoldAs string

const (
	SoldAsSingle SoldAs = "single"
	SoldAsCrate  SoldAs = "crate"
)

// PaymentStatus represents the payment state of a credit sale.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// EggCollectionRecord represents one cage's egg collection for a day,
// including the optional sale and credit-tracking fields.
type EggCollectionRecord struct {
	ID                uuid.UUID
	Date              time.Time
	CageID            string
	Count             int
	IsFromNewChickens bool
	Damaged           int
	Spoiled           int
	Sold              int
	SoldAs            SoldAs
	PricePerUnit      decimal.Decimal
	PaymentDue        *time.Time
	PaymentStatus     PaymentStatus
	BuyerName         string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewEggCollectionRecord creates a new EggCollectionRecord entity.
func NewEggCollectionRecord(
	date time.Time,
	cageID string,
	count int,
	isFromNewChickens bool,
	damaged, spoiled, sold int,
	soldAs SoldAs,
	pricePerUnit decimal.Decimal,
) *EggCollectionRecord {
	now := time.Now().UTC()

	return &EggCollectionRecord{
		ID:                uuid.New(),
		Date:              date,
		CageID:            cageID,
		Count:             count,
		IsFromNewChickens: isFromNewChickens,
		Damaged:           damaged,
		Spoiled:           spoiled,
		Sold:              sold,
		SoldAs:            soldAs,
		PricePerUnit:      pricePerUnit,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Leftover returns the eggs neither damaged, spoiled nor sold.
func (r *EggCollectionRecord) Leftover() int {
	return r.Count - r.Damaged - r.Spoiled - r.Sold
}

// IsCreditSale reports whether the record carries a deferred payment.
func (r *EggCollectionRecord) IsCreditSale() bool {
	return r.BuyerName != "" && r.Sold > 0 && !r.PricePerUnit.IsZero()
}

// SaleAmount returns pricePerUnit × sold for the record.
func (r *EggCollectionRecord) SaleAmount() decimal.Decimal {
	return r.PricePerUnit.Mul(decimal.NewFromInt(int64(r.Sold)))
}
