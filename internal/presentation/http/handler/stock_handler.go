package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openstock/openstock-api/internal/application/service"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/domain/repository"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/request"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/response"
	"github.com/openstock/openstock-api/pkg/pagination"
)

// StockHandler handles stock movement HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// CreateMovement handles recording a stock movement
func (h *StockHandler) CreateMovement(c *gin.Context) {
	var req request.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	movement, err := h.stockService.CreateMovement(c.Request.Context(), &service.CreateMovementInput{
		ProductID:     req.ProductID,
		VariantID:     req.VariantID,
		Type:          enum.MovementType(req.Type),
		Quantity:      *req.Quantity,
		UnitCost:      req.UnitCost,
		Reference:     req.Reference,
		Reason:        req.Reason,
		SupplierID:    req.SupplierID,
		AllowNegative: req.AllowNegative,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock movement recorded successfully", movement)
}

// ListMovements handles listing stock movements
func (h *StockHandler) ListMovements(c *gin.Context) {
	var filter request.MovementFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.MovementFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}
	if filter.ProductID != "" {
		params.ProductID = &filter.ProductID
	}
	if filter.Type != "" {
		movementType := enum.MovementType(filter.Type)
		if !movementType.Valid() {
			response.BadRequest(c, "Invalid movement type")
			return
		}
		params.Type = &movementType
	}

	result, err := h.stockService.ListMovements(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock movements retrieved successfully", result)
}
