package service

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/repository"
	"github.com/openstock/openstock-api/pkg/apperror"
	"github.com/openstock/openstock-api/pkg/identifier"
	"github.com/openstock/openstock-api/pkg/pagination"
)

// ProductService handles product, variant and supplier price operations
type ProductService struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
	priceRepo   repository.PriceRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	priceRepo repository.PriceRepository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		variantRepo: variantRepo,
		priceRepo:   priceRepo,
	}
}

// CreateProductInput represents a product creation request
type CreateProductInput struct {
	SKU           *string
	Barcode       *string
	Name          string
	Description   *string
	CategoryID    *string
	CostPrice     float64
	SellingPrice  float64
	MarginPercent float64
	TaxID         *string
	StockQuantity int
	StockMin      int
	StockMax      *int
	Unit          string
	SupplierID    *string
	Options       *string
}

// CreateProduct creates a product. A zero selling price is derived from the
// cost price and margin. The initial stock quantity is stored as-is; later
// changes must go through stock movements.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.SKU != nil && *input.SKU != "" {
		existing, err := s.productRepo.GetBySKU(ctx, *input.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Product with this SKU already exists")
		}
	}

	sellingPrice := input.SellingPrice
	if sellingPrice == 0 && input.CostPrice > 0 {
		sellingPrice = input.CostPrice * (1 + input.MarginPercent/100)
	}

	unit := input.Unit
	if unit == "" {
		unit = "unit"
	}

	product := &entity.Product{
		ID:            identifier.New("prod"),
		SKU:           input.SKU,
		Barcode:       input.Barcode,
		Name:          input.Name,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		CostPrice:     input.CostPrice,
		SellingPrice:  sellingPrice,
		MarginPercent: input.MarginPercent,
		TaxID:         input.TaxID,
		StockQuantity: input.StockQuantity,
		StockMin:      input.StockMin,
		StockMax:      input.StockMax,
		Unit:          unit,
		SupplierID:    input.SupplierID,
		IsActive:      true,
		Options:       input.Options,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if sellingPrice > 0 {
		history := &entity.SellingPriceHistory{
			ID:        identifier.New("sph"),
			ProductID: product.ID,
			Price:     sellingPrice,
		}
		if err := s.priceRepo.AddSellingPrice(ctx, history); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents a product update request. StockQuantity is
// deliberately absent; stock only moves through movements.
type UpdateProductInput struct {
	SKU           *string
	Barcode       *string
	Name          string
	Description   *string
	CategoryID    *string
	CostPrice     float64
	SellingPrice  float64
	MarginPercent float64
	TaxID         *string
	StockMin      int
	StockMax      *int
	Unit          string
	SupplierID    *string
	IsActive      bool
	Options       *string
}

// UpdateProduct updates a product, appending a selling price history row
// when the price changes.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SKU != nil && *input.SKU != "" {
		if product.SKU == nil || *product.SKU != *input.SKU {
			existing, err := s.productRepo.GetBySKU(ctx, *input.SKU)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, apperror.NewConflictError("Product with this SKU already exists")
			}
		}
	}

	priceChanged := input.SellingPrice != product.SellingPrice

	product.SKU = input.SKU
	product.Barcode = input.Barcode
	product.Name = input.Name
	product.Description = input.Description
	product.CategoryID = input.CategoryID
	product.CostPrice = input.CostPrice
	product.SellingPrice = input.SellingPrice
	product.MarginPercent = input.MarginPercent
	product.TaxID = input.TaxID
	product.StockMin = input.StockMin
	product.StockMax = input.StockMax
	if input.Unit != "" {
		product.Unit = input.Unit
	}
	product.SupplierID = input.SupplierID
	product.IsActive = input.IsActive
	product.Options = input.Options

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if priceChanged && input.SellingPrice > 0 {
		history := &entity.SellingPriceHistory{
			ID:        identifier.New("sph"),
			ProductID: product.ID,
			Price:     input.SellingPrice,
		}
		if err := s.priceRepo.AddSellingPrice(ctx, history); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// DeleteProduct deletes a product by ID
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// CreateVariantInput represents a variant creation request
type CreateVariantInput struct {
	Name          string
	SKU           *string
	Barcode       *string
	CostPrice     float64
	MarginPercent float64
	Price         float64
	TaxID         *string
	StockQuantity int
	StockMin      int
	StockMax      *int
	SupplierID    *string
}

// CreateVariant creates a variant under a product
func (s *ProductService) CreateVariant(ctx context.Context, productID string, input *CreateVariantInput) (*entity.ProductVariant, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	price := input.Price
	if price == 0 && input.CostPrice > 0 {
		price = input.CostPrice * (1 + input.MarginPercent/100)
	}

	variant := &entity.ProductVariant{
		ID:            identifier.New("var"),
		ProductID:     productID,
		Name:          input.Name,
		SKU:           input.SKU,
		Barcode:       input.Barcode,
		CostPrice:     input.CostPrice,
		MarginPercent: input.MarginPercent,
		Price:         price,
		TaxID:         input.TaxID,
		StockQuantity: input.StockQuantity,
		StockMin:      input.StockMin,
		StockMax:      input.StockMax,
		SupplierID:    input.SupplierID,
	}

	if err := s.variantRepo.Create(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// UpdateVariant updates a variant, appending selling price history on change
func (s *ProductService) UpdateVariant(ctx context.Context, id string, input *CreateVariantInput) (*entity.ProductVariant, error) {
	variant, err := s.variantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, apperror.NewNotFoundError("Product variant")
	}

	priceChanged := input.Price != variant.Price

	variant.Name = input.Name
	variant.SKU = input.SKU
	variant.Barcode = input.Barcode
	variant.CostPrice = input.CostPrice
	variant.MarginPercent = input.MarginPercent
	variant.Price = input.Price
	variant.TaxID = input.TaxID
	variant.StockMin = input.StockMin
	variant.StockMax = input.StockMax
	variant.SupplierID = input.SupplierID

	if err := s.variantRepo.Update(ctx, variant); err != nil {
		return nil, err
	}

	if priceChanged && input.Price > 0 {
		history := &entity.SellingPriceHistory{
			ID:        identifier.New("sph"),
			ProductID: variant.ProductID,
			VariantID: &variant.ID,
			Price:     input.Price,
		}
		if err := s.priceRepo.AddSellingPrice(ctx, history); err != nil {
			return nil, err
		}
	}

	return variant, nil
}

// DeleteVariant deletes a variant by ID
func (s *ProductService) DeleteVariant(ctx context.Context, id string) error {
	variant, err := s.variantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if variant == nil {
		return apperror.NewNotFoundError("Product variant")
	}
	return s.variantRepo.Delete(ctx, id)
}

// ListVariants lists variants of a product
func (s *ProductService) ListVariants(ctx context.Context, productID string) ([]entity.ProductVariant, error) {
	return s.variantRepo.ListByProduct(ctx, productID)
}

// SupplierPriceInput represents a supplier price create or update request
type SupplierPriceInput struct {
	SupplierID   string
	Price        float64
	MinQuantity  int
	LeadTimeDays *int
	SupplierSKU  *string
	PurchaseURL  *string
	IsPreferred  bool
	CreatedBy    *string
}

// CreateSupplierPrice records a supplier quote for a product together with
// its first history row.
func (s *ProductService) CreateSupplierPrice(ctx context.Context, productID string, input *SupplierPriceInput) (*entity.SupplierPrice, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	minQuantity := input.MinQuantity
	if minQuantity <= 0 {
		minQuantity = 1
	}

	price := &entity.SupplierPrice{
		ID:           identifier.New("sp"),
		ProductID:    productID,
		SupplierID:   input.SupplierID,
		Price:        input.Price,
		MinQuantity:  minQuantity,
		LeadTimeDays: input.LeadTimeDays,
		SupplierSKU:  input.SupplierSKU,
		PurchaseURL:  input.PurchaseURL,
		IsPreferred:  input.IsPreferred,
	}
	history := &entity.SupplierPriceHistory{
		ID:              identifier.New("sph"),
		SupplierPriceID: price.ID,
		Price:           input.Price,
		CreatedBy:       input.CreatedBy,
	}

	if err := s.priceRepo.CreateSupplierPrice(ctx, price, history); err != nil {
		return nil, err
	}
	return price, nil
}

// UpdateSupplierPrice updates a supplier quote; a price change appends a
// history row in the same transaction.
func (s *ProductService) UpdateSupplierPrice(ctx context.Context, id string, input *SupplierPriceInput) (*entity.SupplierPrice, error) {
	price, err := s.priceRepo.GetSupplierPrice(ctx, id)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, apperror.NewNotFoundError("Supplier price")
	}

	var history *entity.SupplierPriceHistory
	if input.Price != price.Price {
		history = &entity.SupplierPriceHistory{
			ID:              identifier.New("sph"),
			SupplierPriceID: price.ID,
			Price:           input.Price,
			CreatedBy:       input.CreatedBy,
		}
	}

	price.SupplierID = input.SupplierID
	price.Price = input.Price
	if input.MinQuantity > 0 {
		price.MinQuantity = input.MinQuantity
	}
	price.LeadTimeDays = input.LeadTimeDays
	price.SupplierSKU = input.SupplierSKU
	price.PurchaseURL = input.PurchaseURL
	price.IsPreferred = input.IsPreferred

	if err := s.priceRepo.UpdateSupplierPrice(ctx, price, history); err != nil {
		return nil, err
	}
	return price, nil
}

// DeleteSupplierPrice removes a supplier quote
func (s *ProductService) DeleteSupplierPrice(ctx context.Context, id string) error {
	price, err := s.priceRepo.GetSupplierPrice(ctx, id)
	if err != nil {
		return err
	}
	if price == nil {
		return apperror.NewNotFoundError("Supplier price")
	}
	return s.priceRepo.DeleteSupplierPrice(ctx, id)
}

// ListSupplierPrices lists supplier quotes for a product
func (s *ProductService) ListSupplierPrices(ctx context.Context, productID string) ([]entity.SupplierPrice, error) {
	return s.priceRepo.ListSupplierPrices(ctx, productID)
}

// ListSellingPrices lists the selling price history of a product
func (s *ProductService) ListSellingPrices(ctx context.Context, productID string) ([]entity.SellingPriceHistory, error) {
	return s.priceRepo.ListSellingPrices(ctx, productID)
}
