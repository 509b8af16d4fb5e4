// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Category    string          `gorm:"type:varchar(50);index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Description: m.Description,
		Category:    m.Category,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ExpenseModelFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseModelFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		UserID:      expense.UserID,
		Amount:      expense.Amount,
		Description: expense.Description,
		Category:    expense.Category,
		Date:        expense.Date,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// RevenueModel represents the revenues table in the database.
type RevenueModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Category    string          `gorm:"type:varchar(50);index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RevenueModel.
func (RevenueModel) TableName() string {
	return "revenues"
}

// ToEntity converts a RevenueModel to a domain Revenue entity.
func (m *RevenueModel) ToEntity() *entity.Revenue {
	return &entity.Revenue{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Description: m.Description,
		Category:    m.Category,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// RevenueModelFromEntity creates a RevenueModel from a domain Revenue entity.
func RevenueModelFromEntity(revenue *entity.Revenue) *RevenueModel {
	return &RevenueModel{
		ID:          revenue.ID,
		UserID:      revenue.UserID,
		Amount:      revenue.Amount,
		Description: revenue.Description,
		Category:    revenue.Category,
		Date:        revenue.Date,
		CreatedAt:   revenue.CreatedAt,
		UpdatedAt:   revenue.UpdatedAt,
	}
}
