// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/usecase/finance"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
	"github.com/cluck-and-track/backend/internal/integration/entrypoint/dto"
	"github.com/cluck-and-track/backend/internal/integration/entrypoint/middleware"
)

// FinanceController handles expense and revenue endpoints.
type FinanceController struct {
	createExpenseUseCase   *finance.CreateExpenseUseCase
	listExpensesUseCase    *finance.ListExpensesUseCase
	updateExpenseUseCase   *finance.UpdateExpenseUseCase
	deleteExpenseUseCase   *finance.DeleteExpenseUseCase
	createRevenueUseCase   *finance.CreateRevenueUseCase
	listRevenuesUseCase    *finance.ListRevenuesUseCase
	deleteRevenueUseCase   *finance.DeleteRevenueUseCase
	suggestCategoryUseCase *finance.SuggestCategoryUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(
	createExpenseUseCase *finance.CreateExpenseUseCase,
	listExpensesUseCase *finance.ListExpensesUseCase,
	updateExpenseUseCase *finance.UpdateExpenseUseCase,
	deleteExpenseUseCase *finance.DeleteExpenseUseCase,
	createRevenueUseCase *finance.CreateRevenueUseCase,
	listRevenuesUseCase *finance.ListRevenuesUseCase,
	deleteRevenueUseCase *finance.DeleteRevenueUseCase,
	suggestCategoryUseCase *finance.SuggestCategoryUseCase,
) *FinanceController {
	return &FinanceController{
		createExpenseUseCase:   createExpenseUseCase,
		listExpensesUseCase:    listExpensesUseCase,
		updateExpenseUseCase:   updateExpenseUseCase,
		deleteExpenseUseCase:   deleteExpenseUseCase,
		createRevenueUseCase:   createRevenueUseCase,
		listRevenuesUseCase:    listRevenuesUseCase,
		deleteRevenueUseCase:   deleteRevenueUseCase,
		suggestCategoryUseCase: suggestCategoryUseCase,
	}
}

// CreateExpense handles POST /expenses requests.
func (c *FinanceController) CreateExpense(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingDescription),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	input := finance.CreateExpenseInput{
		UserID:      userID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
	}

	output, err := c.createExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// ListExpenses handles GET /expenses requests.
func (c *FinanceController) ListExpenses(ctx *gin.Context) {
	input := finance.ListExpensesInput{
		Category: ctx.Query("category"),
	}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err == nil {
			input.EndDate = &endDate
		}
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	expenses := make([]dto.ExpenseResponse, len(output.Expenses))
	for i, expense := range output.Expenses {
		expenses[i] = dto.ToExpenseResponse(expense)
	}

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses: expenses,
		Total:    output.Total.StringFixed(2),
	})
}

// UpdateExpense handles PUT /expenses/:id requests.
func (c *FinanceController) UpdateExpense(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingDescription),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	input := finance.UpdateExpenseInput{
		ID:          id,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
	}

	output, err := c.updateExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// DeleteExpense handles DELETE /expenses/:id requests.
func (c *FinanceController) DeleteExpense(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	input := finance.DeleteExpenseInput{ID: id}
	if err := c.deleteExpenseUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Expense deleted successfully",
	})
}

// CreateRevenue handles POST /revenues requests.
func (c *FinanceController) CreateRevenue(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateRevenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingDescription),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	input := finance.CreateRevenueInput{
		UserID:      userID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
	}

	output, err := c.createRevenueUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRevenueResponse(output.Revenue))
}

// ListRevenues handles GET /revenues requests.
func (c *FinanceController) ListRevenues(ctx *gin.Context) {
	input := finance.ListRevenuesInput{}

	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err == nil {
			input.EndDate = &endDate
		}
	}

	output, err := c.listRevenuesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	revenues := make([]dto.RevenueResponse, len(output.Revenues))
	for i, revenue := range output.Revenues {
		revenues[i] = dto.ToRevenueResponse(revenue)
	}

	ctx.JSON(http.StatusOK, dto.RevenueListResponse{
		Revenues: revenues,
		Total:    output.Total.StringFixed(2),
	})
}

// DeleteRevenue handles DELETE /revenues/:id requests.
func (c *FinanceController) DeleteRevenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid revenue ID",
			Code:  string(domainerror.ErrCodeRevenueNotFound),
		})
		return
	}

	input := finance.DeleteRevenueInput{ID: id}
	if err := c.deleteRevenueUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Revenue deleted successfully",
	})
}

// SuggestCategory handles POST /expenses/suggest-category requests.
func (c *FinanceController) SuggestCategory(ctx *gin.Context) {
	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingDescription),
		})
		return
	}

	input := finance.SuggestCategoryInput{
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
	}

	output, err := c.suggestCategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFinanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:   output.Category,
		Confidence: output.Confidence,
		Reasoning:  output.Reasoning,
	})
}

// handleFinanceError handles finance errors and returns appropriate HTTP responses.
func (c *FinanceController) handleFinanceError(ctx *gin.Context, err error) {
	var financeErr *domainerror.FinanceError
	if errors.As(err, &financeErr) {
		statusCode := c.getStatusCodeForFinanceError(financeErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: financeErr.Message,
			Code:  string(financeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFinanceError maps finance error codes to HTTP status codes.
func (c *FinanceController) getStatusCodeForFinanceError(code domainerror.FinanceErrorCode) int {
	switch code {
	case domainerror.ErrCodeNonPositiveAmount,
		domainerror.ErrCodeMissingDescription:
		return http.StatusBadRequest
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeRevenueNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
