// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/cluck-and-track/backend/internal/application/usecase/finance"
)

// CreateExpenseRequest represents the request body for creating an expense.
type CreateExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=50"`
}

// UpdateExpenseRequest represents the request body for updating an expense.
type UpdateExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=50"`
}

// CreateRevenueRequest represents the request body for creating a revenue.
type CreateRevenueRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=50"`
}

// SuggestCategoryRequest represents the request body for an AI category suggestion.
type SuggestCategoryRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount,omitempty"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// RevenueResponse represents a revenue in API responses.
type RevenueResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RevenueListResponse represents the response for listing revenues.
type RevenueListResponse struct {
	Revenues []RevenueResponse `json:"revenues"`
	Total    string            `json:"total"`
}

// SuggestCategoryResponse represents the response for an AI category suggestion.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// ToExpenseResponse converts a use case expense output to an ExpenseResponse DTO.
func ToExpenseResponse(expense *finance.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Date:        expense.Date.Format("2006-01-02"),
		Description: expense.Description,
		Amount:      expense.Amount.StringFixed(2),
		Category:    expense.Category,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// ToRevenueResponse converts a use case revenue output to a RevenueResponse DTO.
func ToRevenueResponse(revenue *finance.RevenueOutput) RevenueResponse {
	return RevenueResponse{
		ID:          revenue.ID.String(),
		Date:        revenue.Date.Format("2006-01-02"),
		Description: revenue.Description,
		Amount:      revenue.Amount.StringFixed(2),
		Category:    revenue.Category,
		CreatedAt:   revenue.CreatedAt,
		UpdatedAt:   revenue.UpdatedAt,
	}
}
