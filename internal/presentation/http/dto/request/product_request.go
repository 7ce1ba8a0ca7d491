package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	SKU           *string `json:"sku"`
	Barcode       *string `json:"barcode"`
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	CategoryID    *string `json:"category_id"`
	CostPrice     float64 `json:"cost_price" binding:"min=0"`
	SellingPrice  float64 `json:"selling_price" binding:"min=0"`
	MarginPercent float64 `json:"margin_percent"`
	TaxID         *string `json:"tax_id"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	StockMin      int     `json:"stock_min" binding:"min=0"`
	StockMax      *int    `json:"stock_max"`
	Unit          string  `json:"unit"`
	SupplierID    *string `json:"supplier_id"`
	Options       *string `json:"options"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	SKU           *string `json:"sku"`
	Barcode       *string `json:"barcode"`
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	CategoryID    *string `json:"category_id"`
	CostPrice     float64 `json:"cost_price" binding:"min=0"`
	SellingPrice  float64 `json:"selling_price" binding:"min=0"`
	MarginPercent float64 `json:"margin_percent"`
	TaxID         *string `json:"tax_id"`
	StockMin      int     `json:"stock_min" binding:"min=0"`
	StockMax      *int    `json:"stock_max"`
	Unit          string  `json:"unit"`
	SupplierID    *string `json:"supplier_id"`
	IsActive      bool    `json:"is_active"`
	Options       *string `json:"options"`
}

// ProductFilterRequest represents product list query parameters
type ProductFilterRequest struct {
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	SupplierID string `form:"supplier_id"`
	LowStock   bool   `form:"low_stock"`
	ActiveOnly bool   `form:"active_only"`
}

// VariantRequest represents a variant create or update request
type VariantRequest struct {
	Name          string  `json:"name" binding:"required"`
	SKU           *string `json:"sku"`
	Barcode       *string `json:"barcode"`
	CostPrice     float64 `json:"cost_price" binding:"min=0"`
	MarginPercent float64 `json:"margin_percent"`
	Price         float64 `json:"price" binding:"min=0"`
	TaxID         *string `json:"tax_id"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	StockMin      int     `json:"stock_min" binding:"min=0"`
	StockMax      *int    `json:"stock_max"`
	SupplierID    *string `json:"supplier_id"`
}

// SupplierPriceRequest represents a supplier price create or update request
type SupplierPriceRequest struct {
	SupplierID   string  `json:"supplier_id" binding:"required"`
	Price        float64 `json:"price" binding:"required,min=0"`
	MinQuantity  int     `json:"min_quantity"`
	LeadTimeDays *int    `json:"lead_time_days"`
	SupplierSKU  *string `json:"supplier_sku"`
	PurchaseURL  *string `json:"purchase_url"`
	IsPreferred  bool    `json:"is_preferred"`
	CreatedBy    *string `json:"created_by"`
}
