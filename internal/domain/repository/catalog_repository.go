package repository

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
)

// CategoryRepository defines category data access operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Category, error)
}

// SupplierRepository defines supplier data access operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Supplier, error)
	CountActive(ctx context.Context) (int64, error)
}

// TaxRepository defines tax data access operations
type TaxRepository interface {
	Create(ctx context.Context, tax *entity.Tax) error
	GetByID(ctx context.Context, id string) (*entity.Tax, error)
	Update(ctx context.Context, tax *entity.Tax) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.Tax, error)
}

// SettingsRepository accesses the settings singleton row
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, settings *entity.Settings) error
}

// PriceRepository covers supplier prices and price history
type PriceRepository interface {
	// CreateSupplierPrice inserts the price and its first history row in one
	// transaction.
	CreateSupplierPrice(ctx context.Context, price *entity.SupplierPrice, history *entity.SupplierPriceHistory) error
	// UpdateSupplierPrice saves the price and appends a history row in one
	// transaction.
	UpdateSupplierPrice(ctx context.Context, price *entity.SupplierPrice, history *entity.SupplierPriceHistory) error
	GetSupplierPrice(ctx context.Context, id string) (*entity.SupplierPrice, error)
	ListSupplierPrices(ctx context.Context, productID string) ([]entity.SupplierPrice, error)
	DeleteSupplierPrice(ctx context.Context, id string) error

	AddSellingPrice(ctx context.Context, history *entity.SellingPriceHistory) error
	ListSellingPrices(ctx context.Context, productID string) ([]entity.SellingPriceHistory, error)
}

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entity.User, error)
}
