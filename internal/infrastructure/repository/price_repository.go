package repository

import (
	"context"
	"errors"

	"github.com/openstock/openstock-api/internal/domain/entity"
	domainRepo "github.com/openstock/openstock-api/internal/domain/repository"
	"gorm.io/gorm"
)

type priceRepository struct {
	db *gorm.DB
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(db *gorm.DB) domainRepo.PriceRepository {
	return &priceRepository{db: db}
}

func (r *priceRepository) CreateSupplierPrice(ctx context.Context, price *entity.SupplierPrice, history *entity.SupplierPriceHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(price).Error; err != nil {
			return err
		}
		return tx.Create(history).Error
	})
}

// UpdateSupplierPrice saves the price and, when the price value changed,
// appends the history row the service built. A nil history means no change.
func (r *priceRepository) UpdateSupplierPrice(ctx context.Context, price *entity.SupplierPrice, history *entity.SupplierPriceHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(price).Error; err != nil {
			return err
		}
		if history == nil {
			return nil
		}
		return tx.Create(history).Error
	})
}

func (r *priceRepository) GetSupplierPrice(ctx context.Context, id string) (*entity.SupplierPrice, error) {
	var price entity.SupplierPrice
	err := r.db.WithContext(ctx).Preload("Supplier").First(&price, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &price, err
}

func (r *priceRepository) ListSupplierPrices(ctx context.Context, productID string) ([]entity.SupplierPrice, error) {
	var prices []entity.SupplierPrice
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("product_id = ?", productID).
		Order("is_preferred DESC, price ASC").
		Find(&prices).Error
	return prices, err
}

func (r *priceRepository) DeleteSupplierPrice(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.SupplierPrice{}, "id = ?", id).Error
}

func (r *priceRepository) AddSellingPrice(ctx context.Context, history *entity.SellingPriceHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *priceRepository) ListSellingPrices(ctx context.Context, productID string) ([]entity.SellingPriceHistory, error) {
	var history []entity.SellingPriceHistory
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&history).Error
	return history, err
}
