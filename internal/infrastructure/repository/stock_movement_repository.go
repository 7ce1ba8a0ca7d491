package repository

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
	domainRepo "github.com/openstock/openstock-api/internal/domain/repository"
	"gorm.io/gorm"
)

type stockMovementRepository struct {
	db *gorm.DB
}

// NewStockMovementRepository creates a new stock movement repository
func NewStockMovementRepository(db *gorm.DB) domainRepo.StockMovementRepository {
	return &stockMovementRepository{db: db}
}

// Apply inserts the movement and sets the product's stock_quantity to the
// movement's StockAfter. Both writes run in one transaction; a failure of
// either rolls back the other.
func (r *stockMovementRepository) Apply(ctx context.Context, movement *entity.StockMovement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(movement).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Product{}).
			Where("id = ?", movement.ProductID).
			Update("stock_quantity", movement.StockAfter).Error
	})
}

func (r *stockMovementRepository) List(ctx context.Context, params *domainRepo.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	var movements []entity.StockMovement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockMovement{})

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Product").
		Order("created_at DESC").
		Find(&movements).Error

	return movements, total, err
}

func (r *stockMovementRepository) Recent(ctx context.Context, limit int) ([]entity.StockMovement, error) {
	var movements []entity.StockMovement
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&movements).Error
	return movements, err
}

func (r *stockMovementRepository) OutboundTotals(ctx context.Context) (*domainRepo.OutboundTotals, error) {
	var totals domainRepo.OutboundTotals
	err := r.db.WithContext(ctx).Model(&entity.StockMovement{}).
		Where("type = ?", "out").
		Select("COALESCE(SUM(ABS(quantity)), 0) AS quantity, COALESCE(SUM(ABS(quantity) * COALESCE(unit_cost, 0)), 0) AS value, COUNT(*) AS count").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
