package repository

import (
	"context"
	"errors"

	"github.com/openstock/openstock-api/internal/domain/entity"
	domainRepo "github.com/openstock/openstock-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Tax").Preload("Supplier").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "sku = ?", sku).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})

	if params.Search != "" {
		query = query.Where("name LIKE ? OR sku LIKE ? OR barcode LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if params.LowStock {
		query = query.Where("stock_quantity <= stock_min")
	}

	if params.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Category").Preload("Tax").Preload("Supplier").
		Order("created_at DESC").
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *productRepository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("stock_quantity <= stock_min AND is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *productRepository) ListLowStock(ctx context.Context, limit int) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("stock_quantity <= stock_min AND is_active = ?", true).
		Order("stock_quantity - stock_min ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) TotalStockValue(ctx context.Context) (float64, error) {
	var value float64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(cost_price * stock_quantity), 0)").
		Scan(&value).Error
	return value, err
}

type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository creates a new product variant repository
func NewVariantRepository(db *gorm.DB) domainRepo.VariantRepository {
	return &variantRepository{db: db}
}

func (r *variantRepository) Create(ctx context.Context, variant *entity.ProductVariant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *variantRepository) GetByID(ctx context.Context, id string) (*entity.ProductVariant, error) {
	var variant entity.ProductVariant
	err := r.db.WithContext(ctx).First(&variant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &variant, err
}

func (r *variantRepository) Update(ctx context.Context, variant *entity.ProductVariant) error {
	return r.db.WithContext(ctx).Save(variant).Error
}

func (r *variantRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.ProductVariant{}, "id = ?", id).Error
}

func (r *variantRepository) ListByProduct(ctx context.Context, productID string) ([]entity.ProductVariant, error) {
	var variants []entity.ProductVariant
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&variants).Error
	return variants, err
}
