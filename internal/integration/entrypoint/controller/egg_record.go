// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/usecase/eggrecord"
	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
	"github.com/cluck-and-track/backend/internal/integration/entrypoint/dto"
)

// EggRecordController handles egg collection record endpoints.
type EggRecordController struct {
	createUseCase        *eggrecord.CreateRecordUseCase
	listUseCase          *eggrecord.ListRecordsUseCase
	updateUseCase        *eggrecord.UpdateRecordUseCase
	updateStatusUseCase  *eggrecord.UpdatePaymentStatusUseCase
	deleteUseCase        *eggrecord.DeleteRecordUseCase
}

// NewEggRecordController creates a new egg record controller instance.
func NewEggRecordController(
	createUseCase *eggrecord.CreateRecordUseCase,
	listUseCase *eggrecord.ListRecordsUseCase,
	updateUseCase *eggrecord.UpdateRecordUseCase,
	updateStatusUseCase *eggrecord.UpdatePaymentStatusUseCase,
	deleteUseCase *eggrecord.DeleteRecordUseCase,
) *EggRecordController {
	return &EggRecordController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		updateUseCase:       updateUseCase,
		updateStatusUseCase: updateStatusUseCase,
		deleteUseCase:       deleteUseCase,
	}
}

// Create handles POST /records requests.
func (c *EggRecordController) Create(ctx *gin.Context) {
	var req dto.CreateEggRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCage),
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

	paymentDue, err := parseOptionalDate(req.PaymentDue)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment_due format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	input := eggrecord.CreateRecordInput{
		Date:              date,
		CageID:            req.CageID,
		Count:             req.Count,
		IsFromNewChickens: req.IsFromNewChickens,
		Damaged:           req.Damaged,
		Spoiled:           req.Spoiled,
		Sold:              req.Sold,
		SoldAs:            entity.SoldAs(req.SoldAs),
		PricePerUnit:      decimal.NewFromFloat(req.PricePerUnit),
		PaymentDue:        paymentDue,
		PaymentStatus:     entity.PaymentStatus(req.PaymentStatus),
		BuyerName:         req.BuyerName,
		Notes:             req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEggRecordResponse(output.Record))
}

// List handles GET /records requests.
func (c *EggRecordController) List(ctx *gin.Context) {
	input := eggrecord.ListRecordsInput{
		CageID: ctx.Query("cageId"),
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

	if statusStr := ctx.Query("paymentStatus"); statusStr != "" {
		status := entity.PaymentStatus(statusStr)
		input.PaymentStatus = &status
	}

	if ctx.Query("creditOnly") == "true" {
		input.CreditOnly = true
	}

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	records := make([]dto.EggRecordResponse, len(output.Records))
	for i, record := range output.Records {
		records[i] = dto.ToEggRecordResponse(record)
	}

	ctx.JSON(http.StatusOK, dto.EggRecordListResponse{
		Records: records,
		Pagination: dto.PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	})
}

// Update handles PUT /records/:id requests.
func (c *EggRecordController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	var req dto.UpdateEggRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCage),
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

	paymentDue, err := parseOptionalDate(req.PaymentDue)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment_due format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	input := eggrecord.UpdateRecordInput{
		ID:                id,
		Date:              date,
		CageID:            req.CageID,
		Count:             req.Count,
		IsFromNewChickens: req.IsFromNewChickens,
		Damaged:           req.Damaged,
		Spoiled:           req.Spoiled,
		Sold:              req.Sold,
		SoldAs:            entity.SoldAs(req.SoldAs),
		PricePerUnit:      decimal.NewFromFloat(req.PricePerUnit),
		PaymentDue:        paymentDue,
		PaymentStatus:     entity.PaymentStatus(req.PaymentStatus),
		BuyerName:         req.BuyerName,
		Notes:             req.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEggRecordResponse(output.Record))
}

// UpdatePaymentStatus handles PATCH /records/:id/payment-status requests.
func (c *EggRecordController) UpdatePaymentStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidPaymentStatus),
		})
		return
	}

	input := eggrecord.UpdatePaymentStatusInput{
		ID:     id,
		Status: entity.PaymentStatus(req.Status),
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEggRecordResponse(output.Record))
}

// Delete handles DELETE /records/:id requests.
func (c *EggRecordController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	input := eggrecord.DeleteRecordInput{ID: id}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Record deleted successfully",
	})
}

// parseOptionalDate parses a nillable YYYY-MM-DD string.
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// handleRecordError handles record errors and returns appropriate HTTP responses.
func (c *EggRecordController) handleRecordError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		statusCode := c.getStatusCodeForRecordError(recordErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func (c *EggRecordController) getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeNegativeCount,
		domainerror.ErrCodeCountExceeded,
		domainerror.ErrCodeInvalidSoldAs,
		domainerror.ErrCodeInvalidPaymentStatus,
		domainerror.ErrCodeMissingCage,
		domainerror.ErrCodeNotesTooLong:
		return http.StatusBadRequest
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
