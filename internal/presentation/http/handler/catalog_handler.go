package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openstock/openstock-api/internal/application/service"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles category, supplier, tax and settings HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type categoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
	Color       string  `json:"color"`
}

// ListCategories handles listing categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles creating a category
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), &service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		Color:       req.Color,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// UpdateCategory handles updating a category
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), c.Param("id"), &service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		Color:       req.Color,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory handles deleting a category
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

type supplierRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	Country    string  `json:"country"`
	Notes      *string `json:"notes"`
	IsActive   bool    `json:"is_active"`
}

func supplierInput(req *supplierRequest) *service.SupplierInput {
	return &service.SupplierInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Notes:      req.Notes,
		IsActive:   req.IsActive,
	}
}

// ListSuppliers handles listing suppliers
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.catalogService.ListSuppliers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Suppliers retrieved successfully", suppliers)
}

// GetSupplier handles getting a single supplier
func (h *CatalogHandler) GetSupplier(c *gin.Context) {
	supplier, err := h.catalogService.GetSupplier(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier retrieved successfully", supplier)
}

// CreateSupplier handles creating a supplier
func (h *CatalogHandler) CreateSupplier(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.catalogService.CreateSupplier(c.Request.Context(), supplierInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created successfully", supplier)
}

// UpdateSupplier handles updating a supplier
func (h *CatalogHandler) UpdateSupplier(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.catalogService.UpdateSupplier(c.Request.Context(), c.Param("id"), supplierInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier updated successfully", supplier)
}

// DeleteSupplier handles deleting a supplier
func (h *CatalogHandler) DeleteSupplier(c *gin.Context) {
	if err := h.catalogService.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

type taxRequest struct {
	Name      string  `json:"name" binding:"required"`
	Rate      float64 `json:"rate" binding:"min=0"`
	IsDefault bool    `json:"is_default"`
}

// ListTaxes handles listing tax rates
func (h *CatalogHandler) ListTaxes(c *gin.Context) {
	taxes, err := h.catalogService.ListTaxes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Taxes retrieved successfully", taxes)
}

// CreateTax handles creating a tax rate
func (h *CatalogHandler) CreateTax(c *gin.Context) {
	var req taxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tax, err := h.catalogService.CreateTax(c.Request.Context(), &service.TaxInput{
		Name:      req.Name,
		Rate:      req.Rate,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Tax created successfully", tax)
}

// UpdateTax handles updating a tax rate
func (h *CatalogHandler) UpdateTax(c *gin.Context) {
	var req taxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tax, err := h.catalogService.UpdateTax(c.Request.Context(), c.Param("id"), &service.TaxInput{
		Name:      req.Name,
		Rate:      req.Rate,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax updated successfully", tax)
}

// DeleteTax handles deleting a tax rate
func (h *CatalogHandler) DeleteTax(c *gin.Context) {
	if err := h.catalogService.DeleteTax(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetSettings handles reading the settings singleton
func (h *CatalogHandler) GetSettings(c *gin.Context) {
	settings, err := h.catalogService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings handles overwriting the settings singleton
func (h *CatalogHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		BusinessName     string  `json:"business_name" binding:"required"`
		Currency         string  `json:"currency" binding:"required"`
		DefaultMargin    float64 `json:"default_margin" binding:"min=0"`
		LowStockAlert    bool    `json:"low_stock_alert"`
		OutOfStockAlert  bool    `json:"out_of_stock_alert"`
		EmailDailyReport bool    `json:"email_daily_report"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.catalogService.UpdateSettings(c.Request.Context(), &service.SettingsInput{
		BusinessName:     req.BusinessName,
		Currency:         req.Currency,
		DefaultMargin:    req.DefaultMargin,
		LowStockAlert:    req.LowStockAlert,
		OutOfStockAlert:  req.OutOfStockAlert,
		EmailDailyReport: req.EmailDailyReport,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
