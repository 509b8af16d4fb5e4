// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel is the category label used when an expense or revenue
// carries no category.
const UncategorizedLabel = "Uncategorized"

// FeedCategory is the expense category reserved for feed purchases. The egg
// production report charges feed expenses against egg income.
const FeedCategory = "feed"

// Expense represents money spent on the farm.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(userID uuid.UUID, amount decimal.Decimal, description, category string, date time.Time) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CategoryOrDefault returns the category, or UncategorizedLabel when empty.
func (e *Expense) CategoryOrDefault() string {
	if e.Category == "" {
		return UncategorizedLabel
	}
	return e.Category
}

// Revenue represents money earned by the farm. It is structurally identical
// to Expense; the two differ only in which side of the ledger they land on.
type Revenue struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRevenue creates a new Revenue entity.
func NewRevenue(userID uuid.UUID, amount decimal.Decimal, description, category string, date time.Time) *Revenue {
	now := time.Now().UTC()

	return &Revenue{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CategoryOrDefault returns the category, or UncategorizedLabel when empty.
func (r *Revenue) CategoryOrDefault() string {
	if r.Category == "" {
		return UncategorizedLabel
	}
	return r.Category
}
