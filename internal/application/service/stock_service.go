package service

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/domain/repository"
	"github.com/openstock/openstock-api/pkg/apperror"
	"github.com/openstock/openstock-api/pkg/identifier"
	"github.com/openstock/openstock-api/pkg/pagination"
)

// StockService applies stock movements and keeps the product quantity and
// its audit trail consistent.
type StockService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewStockService creates a new stock service
func NewStockService(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *StockService {
	return &StockService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// CreateMovementInput represents a stock movement request. For type
// "adjustment" Quantity is the target absolute stock level; the recorded
// movement quantity becomes the delta actually applied.
type CreateMovementInput struct {
	ProductID     string
	VariantID     *string
	Type          enum.MovementType
	Quantity      int
	UnitCost      *float64
	Reference     *string
	Reason        *string
	SupplierID    *string
	AllowNegative bool
}

// computeMovement derives the stock level after a movement and the quantity
// to record on its audit row. stock_after == stock_before + signed delta in
// every case.
func computeMovement(movementType enum.MovementType, stockBefore, quantity int) (stockAfter, recorded int) {
	switch movementType {
	case enum.MovementIn:
		return stockBefore + quantity, quantity
	case enum.MovementOut:
		return stockBefore - quantity, quantity
	default: // adjustment: quantity is the target level
		return quantity, quantity - stockBefore
	}
}

// CreateMovement records a stock movement and updates the product's stock
// quantity atomically.
func (s *StockService) CreateMovement(ctx context.Context, input *CreateMovementInput) (*entity.StockMovement, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid movement type")
	}
	if input.Type != enum.MovementAdjustment && input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	stockBefore := product.StockQuantity
	stockAfter, recorded := computeMovement(input.Type, stockBefore, input.Quantity)

	if stockAfter < 0 && !input.AllowNegative {
		return nil, apperror.NewBadRequestError("Movement would make stock negative")
	}

	movement := &entity.StockMovement{
		ID:          identifier.New("mov"),
		ProductID:   input.ProductID,
		VariantID:   input.VariantID,
		Type:        input.Type,
		Quantity:    recorded,
		StockBefore: stockBefore,
		StockAfter:  stockAfter,
		UnitCost:    input.UnitCost,
		Reference:   input.Reference,
		Reason:      input.Reason,
		SupplierID:  input.SupplierID,
	}

	if err := s.movementRepo.Apply(ctx, movement); err != nil {
		return nil, err
	}

	return movement, nil
}

// ListMovements lists stock movements with filtering
func (s *StockService) ListMovements(ctx context.Context, params *repository.MovementFilterParams) (*pagination.PaginatedResult[entity.StockMovement], error) {
	movements, total, err := s.movementRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(movements, pag), nil
}
