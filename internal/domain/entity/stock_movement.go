package entity

import (
	"time"

	"github.com/openstock/openstock-api/internal/domain/enum"
)

// StockMovement is the audit trail of a product's stock quantity. The
// invariant StockAfter == StockBefore + signed delta holds for every row,
// and StockBefore always equals the product's quantity immediately before
// the movement was applied.
type StockMovement struct {
	ID          string            `gorm:"size:64;primaryKey" json:"id"`
	ProductID   string            `gorm:"size:64;not null;index" json:"product_id"`
	VariantID   *string           `gorm:"size:64" json:"variant_id,omitempty"`
	Type        enum.MovementType `gorm:"size:20;not null" json:"type"`
	Quantity    int               `gorm:"not null" json:"quantity"`
	StockBefore int               `gorm:"not null" json:"stock_before"`
	StockAfter  int               `gorm:"not null" json:"stock_after"`
	UnitCost    *float64          `json:"unit_cost,omitempty"`
	Reference   *string           `gorm:"size:100" json:"reference,omitempty"`
	Reason      *string           `gorm:"type:text" json:"reason,omitempty"`
	SupplierID  *string           `gorm:"size:64" json:"supplier_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
