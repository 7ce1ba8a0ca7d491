package entity

import "time"

// SupplierPrice is the current purchase price a supplier quotes for a
// product. Price changes append a SupplierPriceHistory row.
type SupplierPrice struct {
	ID           string    `gorm:"size:64;primaryKey" json:"id"`
	ProductID    string    `gorm:"size:64;not null;index" json:"product_id"`
	SupplierID   string    `gorm:"size:64;not null;index" json:"supplier_id"`
	Price        float64   `gorm:"not null" json:"price"`
	MinQuantity  int       `gorm:"default:1" json:"min_quantity"`
	LeadTimeDays *int      `json:"lead_time_days,omitempty"`
	SupplierSKU  *string   `gorm:"size:100" json:"supplier_sku,omitempty"`
	PurchaseURL  *string   `gorm:"size:500" json:"purchase_url,omitempty"`
	IsPreferred  bool      `gorm:"default:false" json:"is_preferred"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

func (SupplierPrice) TableName() string {
	return "supplier_prices"
}

// SupplierPriceHistory records past values of a supplier price.
type SupplierPriceHistory struct {
	ID              string    `gorm:"size:64;primaryKey" json:"id"`
	SupplierPriceID string    `gorm:"size:64;not null;index" json:"supplier_price_id"`
	Price           float64   `gorm:"not null" json:"price"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedBy       *string   `gorm:"size:64" json:"created_by,omitempty"`
}

func (SupplierPriceHistory) TableName() string {
	return "supplier_price_history"
}

// SellingPriceHistory records past selling prices of a product or variant.
type SellingPriceHistory struct {
	ID        string    `gorm:"size:64;primaryKey" json:"id"`
	ProductID string    `gorm:"size:64;not null;index" json:"product_id"`
	VariantID *string   `gorm:"size:64" json:"variant_id,omitempty"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy *string   `gorm:"size:64" json:"created_by,omitempty"`
}

func (SellingPriceHistory) TableName() string {
	return "selling_price_history"
}
