package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openstock/openstock-api/internal/application/service"
	"github.com/openstock/openstock-api/internal/domain/repository"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/request"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/response"
	"github.com/openstock/openstock-api/pkg/pagination"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:     filter.Search,
		LowStock:   filter.LowStock,
		ActiveOnly: filter.ActiveOnly,
	}
	if filter.CategoryID != "" {
		params.CategoryID = &filter.CategoryID
	}
	if filter.SupplierID != "" {
		params.SupplierID = &filter.SupplierID
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		SKU:           req.SKU,
		Barcode:       req.Barcode,
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		MarginPercent: req.MarginPercent,
		TaxID:         req.TaxID,
		StockQuantity: req.StockQuantity,
		StockMin:      req.StockMin,
		StockMax:      req.StockMax,
		Unit:          req.Unit,
		SupplierID:    req.SupplierID,
		Options:       req.Options,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), &service.UpdateProductInput{
		SKU:           req.SKU,
		Barcode:       req.Barcode,
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		MarginPercent: req.MarginPercent,
		TaxID:         req.TaxID,
		StockMin:      req.StockMin,
		StockMax:      req.StockMax,
		Unit:          req.Unit,
		SupplierID:    req.SupplierID,
		IsActive:      req.IsActive,
		Options:       req.Options,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListVariants handles listing variants of a product
func (h *ProductHandler) ListVariants(c *gin.Context) {
	variants, err := h.productService.ListVariants(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Variants retrieved successfully", variants)
}

func variantInput(req *request.VariantRequest) *service.CreateVariantInput {
	return &service.CreateVariantInput{
		Name:          req.Name,
		SKU:           req.SKU,
		Barcode:       req.Barcode,
		CostPrice:     req.CostPrice,
		MarginPercent: req.MarginPercent,
		Price:         req.Price,
		TaxID:         req.TaxID,
		StockQuantity: req.StockQuantity,
		StockMin:      req.StockMin,
		StockMax:      req.StockMax,
		SupplierID:    req.SupplierID,
	}
}

// CreateVariant handles creating a variant under a product
func (h *ProductHandler) CreateVariant(c *gin.Context) {
	var req request.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	variant, err := h.productService.CreateVariant(c.Request.Context(), c.Param("id"), variantInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Variant created successfully", variant)
}

// UpdateVariant handles updating a variant
func (h *ProductHandler) UpdateVariant(c *gin.Context) {
	var req request.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	variant, err := h.productService.UpdateVariant(c.Request.Context(), c.Param("variant_id"), variantInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Variant updated successfully", variant)
}

// DeleteVariant handles deleting a variant
func (h *ProductHandler) DeleteVariant(c *gin.Context) {
	if err := h.productService.DeleteVariant(c.Request.Context(), c.Param("variant_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListSupplierPrices handles listing supplier quotes for a product
func (h *ProductHandler) ListSupplierPrices(c *gin.Context) {
	prices, err := h.productService.ListSupplierPrices(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier prices retrieved successfully", prices)
}

func supplierPriceInput(req *request.SupplierPriceRequest) *service.SupplierPriceInput {
	return &service.SupplierPriceInput{
		SupplierID:   req.SupplierID,
		Price:        req.Price,
		MinQuantity:  req.MinQuantity,
		LeadTimeDays: req.LeadTimeDays,
		SupplierSKU:  req.SupplierSKU,
		PurchaseURL:  req.PurchaseURL,
		IsPreferred:  req.IsPreferred,
		CreatedBy:    req.CreatedBy,
	}
}

// CreateSupplierPrice handles recording a supplier quote
func (h *ProductHandler) CreateSupplierPrice(c *gin.Context) {
	var req request.SupplierPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	price, err := h.productService.CreateSupplierPrice(c.Request.Context(), c.Param("id"), supplierPriceInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier price created successfully", price)
}

// UpdateSupplierPrice handles updating a supplier quote
func (h *ProductHandler) UpdateSupplierPrice(c *gin.Context) {
	var req request.SupplierPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	price, err := h.productService.UpdateSupplierPrice(c.Request.Context(), c.Param("price_id"), supplierPriceInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier price updated successfully", price)
}

// DeleteSupplierPrice handles deleting a supplier quote
func (h *ProductHandler) DeleteSupplierPrice(c *gin.Context) {
	if err := h.productService.DeleteSupplierPrice(c.Request.Context(), c.Param("price_id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListSellingPrices handles listing the selling price history of a product
func (h *ProductHandler) ListSellingPrices(c *gin.Context) {
	history, err := h.productService.ListSellingPrices(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Selling price history retrieved successfully", history)
}
