// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cluck-and-track/backend/internal/application/usecase/report"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
	"github.com/cluck-and-track/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report generation endpoints.
type ReportController struct {
	generateUseCase *report.GenerateReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(generateUseCase *report.GenerateReportUseCase) *ReportController {
	return &ReportController{
		generateUseCase: generateUseCase,
	}
}

// Generate handles GET /reports requests.
// Query parameters: type (egg-production | finances | credit-sales),
// startDate and endDate as YYYY-MM-DD.
func (c *ReportController) Generate(ctx *gin.Context) {
	reportType := report.ReportType(ctx.Query("type"))
	if reportType == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Report type is required",
			Code:  string(domainerror.ErrCodeUnknownReportType),
		})
		return
	}

	startDateStr := ctx.Query("startDate")
	if startDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return
	}
	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid startDate format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	endDateStr := ctx.Query("endDate")
	if endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return
	}
	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid endDate format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	input := report.GenerateReportInput{
		Type:      reportType,
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeUnknownReportType,
		domainerror.ErrCodeInvalidDateFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
