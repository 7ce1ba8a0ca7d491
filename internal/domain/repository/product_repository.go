package repository

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/pkg/pagination"
)

// ProductFilterParams filters product listings
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *string
	SupplierID *string
	LowStock   bool
	ActiveOnly bool
}

// ProductRepository defines product data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)

	CountActive(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	// ListLowStock returns active products at or below their stock minimum,
	// ordered by (stock_quantity - stock_min) ascending.
	ListLowStock(ctx context.Context, limit int) ([]entity.Product, error)
	// TotalStockValue sums cost_price * stock_quantity over active products.
	TotalStockValue(ctx context.Context) (float64, error)
}

// VariantRepository defines product variant data access operations
type VariantRepository interface {
	Create(ctx context.Context, variant *entity.ProductVariant) error
	GetByID(ctx context.Context, id string) (*entity.ProductVariant, error)
	Update(ctx context.Context, variant *entity.ProductVariant) error
	Delete(ctx context.Context, id string) error
	ListByProduct(ctx context.Context, productID string) ([]entity.ProductVariant, error)
}
