package entity

import (
	"time"
)

// Product is an inventory item. StockQuantity is only ever changed through
// a recorded StockMovement, never written directly by a handler.
type Product struct {
	ID            string    `gorm:"size:64;primaryKey" json:"id"`
	SKU           *string   `gorm:"size:100;uniqueIndex" json:"sku,omitempty"`
	Barcode       *string   `gorm:"size:100" json:"barcode,omitempty"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	CategoryID    *string   `gorm:"size:64;index" json:"category_id,omitempty"`
	CostPrice     float64   `gorm:"default:0" json:"cost_price"`
	SellingPrice  float64   `gorm:"default:0" json:"selling_price"`
	MarginPercent float64   `gorm:"default:30" json:"margin_percent"`
	TaxID         *string   `gorm:"size:64" json:"tax_id,omitempty"`
	StockQuantity int       `gorm:"default:0" json:"stock_quantity"`
	StockMin      int       `gorm:"default:0" json:"stock_min"`
	StockMax      *int      `json:"stock_max,omitempty"`
	Unit          string    `gorm:"size:50;default:unit" json:"unit"`
	SupplierID    *string   `gorm:"size:64" json:"supplier_id,omitempty"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	Options       *string   `gorm:"type:text" json:"options,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tax      *Tax      `gorm:"foreignKey:TaxID" json:"tax,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product sits at or below its threshold
// while still being an active item.
func (p *Product) IsLowStock() bool {
	return p.IsActive && p.StockQuantity <= p.StockMin
}

// ProductVariant is a sellable variation of a product with its own pricing
// and stock fields.
type ProductVariant struct {
	ID            string    `gorm:"size:64;primaryKey" json:"id"`
	ProductID     string    `gorm:"size:64;not null;index" json:"product_id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	SKU           *string   `gorm:"size:100" json:"sku,omitempty"`
	Barcode       *string   `gorm:"size:100" json:"barcode,omitempty"`
	CostPrice     float64   `gorm:"default:0" json:"cost_price"`
	MarginPercent float64   `gorm:"default:30" json:"margin_percent"`
	Price         float64   `gorm:"default:0" json:"price"`
	TaxID         *string   `gorm:"size:64" json:"tax_id,omitempty"`
	StockQuantity int       `gorm:"default:0" json:"stock_quantity"`
	StockMin      int       `gorm:"default:0" json:"stock_min"`
	StockMax      *int      `json:"stock_max,omitempty"`
	SupplierID    *string   `gorm:"size:64" json:"supplier_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}
