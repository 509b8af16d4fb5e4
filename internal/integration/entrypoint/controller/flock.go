// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cluck-and-track/backend/internal/application/usecase/flock"
	"github.com/cluck-and-track/backend/internal/domain/entity"
	domainerror "github.com/cluck-and-track/backend/internal/domain/error"
	"github.com/cluck-and-track/backend/internal/integration/entrypoint/dto"
	"github.com/cluck-and-track/backend/internal/integration/entrypoint/middleware"
)

// FlockController handles coop, cage and feed inventory endpoints.
type FlockController struct {
	createCoopUseCase     *flock.CreateCoopUseCase
	listCoopsUseCase      *flock.ListCoopsUseCase
	createCageUseCase     *flock.CreateCageUseCase
	listCagesUseCase      *flock.ListCagesUseCase
	createFeedItemUseCase *flock.CreateFeedItemUseCase
	listFeedItemsUseCase  *flock.ListFeedItemsUseCase
	addFeedStockUseCase   *flock.AddFeedStockUseCase
	consumeFeedUseCase    *flock.ConsumeFeedStockUseCase
}

// NewFlockController creates a new flock controller instance.
func NewFlockController(
	createCoopUseCase *flock.CreateCoopUseCase,
	listCoopsUseCase *flock.ListCoopsUseCase,
	createCageUseCase *flock.CreateCageUseCase,
	listCagesUseCase *flock.ListCagesUseCase,
	createFeedItemUseCase *flock.CreateFeedItemUseCase,
	listFeedItemsUseCase *flock.ListFeedItemsUseCase,
	addFeedStockUseCase *flock.AddFeedStockUseCase,
	consumeFeedUseCase *flock.ConsumeFeedStockUseCase,
) *FlockController {
	return &FlockController{
		createCoopUseCase:     createCoopUseCase,
		listCoopsUseCase:      listCoopsUseCase,
		createCageUseCase:     createCageUseCase,
		listCagesUseCase:      listCagesUseCase,
		createFeedItemUseCase: createFeedItemUseCase,
		listFeedItemsUseCase:  listFeedItemsUseCase,
		addFeedStockUseCase:   addFeedStockUseCase,
		consumeFeedUseCase:    consumeFeedUseCase,
	}
}

// CreateCoop handles POST /coops requests.
func (c *FlockController) CreateCoop(ctx *gin.Context) {
	var req dto.CreateCoopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := flock.CreateCoopInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	}

	output, err := c.createCoopUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFlockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCoopResponse(output.Coop))
}

// ListCoops handles GET /coops requests.
func (c *FlockController) ListCoops(ctx *gin.Context) {
	output, err := c.listCoopsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleFlockError(ctx, err)
		return
	}

	coops := make([]dto.CoopResponse, len(output.Coops))
	for i, coop := range output.Coops {
		coops[i] = dto.ToCoopResponse(coop)
	}

	ctx.JSON(http.StatusOK, dto.CoopListResponse{Coops: coops})
}

// CreateCage handles POST /cages requests.
func (c *FlockController) CreateCage(ctx *gin.Context) {
	var req dto.CreateCageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	var coopID *uuid.UUID
	if req.CoopID != nil && *req.CoopID != "" {
		parsed, err := uuid.Parse(*req.CoopID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid coop ID",
				Code:  string(domainerror.ErrCodeCoopNotFound),
			})
			return
		}
		coopID = &parsed
	}

	input := flock.CreateCageInput{
		Name:        req.Name,
		CoopID:      coopID,
		Capacity:    req.Capacity,
		NewChickens: req.NewChickens,
		OldChickens: req.OldChickens,
	}

	output, err := c.createCageUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFlockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCageResponse(output.Cage))
}

// ListCages handles GET /cages requests.
func (c *FlockController) ListCages(ctx *gin.Context) {
	input := flock.ListCagesInput{}

	if coopIDStr := ctx.Query("coopId"); coopIDStr != "" {
		coopID, err := uuid.Parse(coopIDStr)
		if err == nil {
			input.CoopID = &coopID
		}
	}

	output, err := c.listCagesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFlockError(ctx, err)
		return
	}

	cages := make([]dto.CageResponse, len(output.Cages))
	for i, cage := range output.Cages {
		cages[i] = dto.ToCageResponse(cage)
	}

	ctx.JSON(http.StatusOK, dto.CageListResponse{Cages: cages})
}

// CreateFeedItem handles POST /feed requests.
func (c *FlockController) CreateFeedItem(ctx *gin.Context) {
	var req dto.CreateFeedItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := flock.CreateFeedItemInput{
		Type:             req.Type,
		ChickenType:      entity.ChickenType(req.ChickenType),
		CurrentStock:     decimal.NewFromFloat(req.CurrentStock),
		DailyConsumption: decimal.NewFromFloat(req.DailyConsumption),
		ReorderLevel:     decimal.NewFromFloat(req.ReorderLevel),
		CostPerKg:        decimal.NewFromFloat(req.CostPerKg),
	}

	output, err := c.createFeedItemUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFlockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFeedItemResponse(output.FeedItem))
}

// ListFeedItems handles GET /feed requests.
func (c *FlockController) ListFeedItems(ctx *gin.Context) {
	output, err := c.listFeedItemsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleFlockError(ctx, err)
		return
	}

	items := make([]dto.FeedItemResponse, len(output.FeedItems))
	for i, item := range output.FeedItems {
		items[i] = dto.ToFeedItemResponse(item)
	}

	ctx.JSON(http.StatusOK, dto.FeedItemListResponse{FeedItems: items})
}

// AddFeedStock handles POST /feed/:id/add requests.
func (c *FlockController) AddFeedStock(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid feed item ID",
			Code:  string(domainerror.ErrCodeFeedNotFound),
		})
		return
	}

	var req dto.AdjustFeedStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := flock.AddFeedStockInput{
		FeedItemID:  id,
		UserID:      userID,
		Kilograms:   decimal.NewFromFloat(req.Kilograms),
		BookExpense: req.BookExpense,
	}

	output, err := c.addFeedStockUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFlockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFeedItemResponse(output.FeedItem))
}

// ConsumeFeedStock handles POST /feed/:id/consume requests.
func (c *FlockController) ConsumeFeedStock(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid feed item ID",
			Code:  string(domainerror.ErrCodeFeedNotFound),
		})
		return
	}

	var req dto.AdjustFeedStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := flock.ConsumeFeedStockInput{
		FeedItemID: id,
		Kilograms:  decimal.NewFromFloat(req.Kilograms),
	}

	output, err := c.consumeFeedUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFlockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFeedItemResponse(output.FeedItem))
}

// handleFlockError handles flock errors and returns appropriate HTTP responses.
func (c *FlockController) handleFlockError(ctx *gin.Context, err error) {
	var flockErr *domainerror.FlockError
	if errors.As(err, &flockErr) {
		statusCode := c.getStatusCodeForFlockError(flockErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: flockErr.Message,
			Code:  string(flockErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFlockError maps flock error codes to HTTP status codes.
func (c *FlockController) getStatusCodeForFlockError(code domainerror.FlockErrorCode) int {
	switch code {
	case domainerror.ErrCodeCageNameTaken:
		return http.StatusConflict
	case domainerror.ErrCodeCapacityExceeded,
		domainerror.ErrCodeInsufficientStock:
		return http.StatusBadRequest
	case domainerror.ErrCodeCoopNotFound,
		domainerror.ErrCodeCageNotFound,
		domainerror.ErrCodeFeedNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
