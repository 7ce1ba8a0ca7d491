package request

// CreateMovementRequest represents a stock movement request. For adjustments
// Quantity is the target stock level rather than a delta.
type CreateMovementRequest struct {
	ProductID     string   `json:"product_id" binding:"required"`
	VariantID     *string  `json:"variant_id"`
	Type          string   `json:"type" binding:"required"`
	Quantity      *int     `json:"quantity" binding:"required"`
	UnitCost      *float64 `json:"unit_cost"`
	Reference     *string  `json:"reference"`
	Reason        *string  `json:"reason"`
	SupplierID    *string  `json:"supplier_id"`
	AllowNegative bool     `json:"allow_negative"`
}

// MovementFilterRequest represents movement list query parameters
type MovementFilterRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	ProductID string `form:"product_id"`
	Type      string `form:"type"`
}
