package repository

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/pkg/pagination"
)

// MovementFilterParams filters stock movement listings
type MovementFilterParams struct {
	Pagination *pagination.PaginationParams
	ProductID  *string
	Type       *enum.MovementType
}

// OutboundTotals aggregates all "out" movements for reporting.
type OutboundTotals struct {
	Quantity int     `json:"quantity"`
	Value    float64 `json:"value"`
	Count    int64   `json:"count"`
}

// StockMovementRepository defines stock movement data access operations
type StockMovementRepository interface {
	// Apply persists the movement and updates the product's stock_quantity
	// to the movement's StockAfter in a single database transaction, so the
	// running total and its audit trail cannot diverge.
	Apply(ctx context.Context, movement *entity.StockMovement) error
	List(ctx context.Context, params *MovementFilterParams) ([]entity.StockMovement, int64, error)
	Recent(ctx context.Context, limit int) ([]entity.StockMovement, error)
	OutboundTotals(ctx context.Context) (*OutboundTotals, error)
}
