package service

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/repository"
	"github.com/openstock/openstock-api/pkg/apperror"
	"github.com/openstock/openstock-api/pkg/identifier"
)

// CatalogService handles categories, suppliers, taxes and settings
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	taxRepo      repository.TaxRepository
	settingsRepo repository.SettingsRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	taxRepo repository.TaxRepository,
	settingsRepo repository.SettingsRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		taxRepo:      taxRepo,
		settingsRepo: settingsRepo,
	}
}

// CategoryInput represents a category create or update request
type CategoryInput struct {
	Name        string
	Description *string
	ParentID    *string
	Color       string
}

// CreateCategory creates a category
func (s *CatalogService) CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error) {
	color := input.Color
	if color == "" {
		color = "#6B7280"
	}

	category := &entity.Category{
		ID:          identifier.New("cat"),
		Name:        input.Name,
		Description: input.Description,
		ParentID:    input.ParentID,
		Color:       color,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates a category
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, input *CategoryInput) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	category.Name = input.Name
	category.Description = input.Description
	category.ParentID = input.ParentID
	if input.Color != "" {
		category.Color = input.Color
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category by ID
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// ListCategories lists all categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// SupplierInput represents a supplier create or update request
type SupplierInput struct {
	Name       string
	Email      *string
	Phone      *string
	Address    *string
	City       *string
	PostalCode *string
	Country    string
	Notes      *string
	IsActive   bool
}

// CreateSupplier creates a supplier
func (s *CatalogService) CreateSupplier(ctx context.Context, input *SupplierInput) (*entity.Supplier, error) {
	country := input.Country
	if country == "" {
		country = "France"
	}

	supplier := &entity.Supplier{
		ID:         identifier.New("sup"),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    country,
		Notes:      input.Notes,
		IsActive:   true,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *CatalogService) GetSupplier(ctx context.Context, id string) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// UpdateSupplier updates a supplier
func (s *CatalogService) UpdateSupplier(ctx context.Context, id string, input *SupplierInput) (*entity.Supplier, error) {
	supplier, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = input.Name
	supplier.Email = input.Email
	supplier.Phone = input.Phone
	supplier.Address = input.Address
	supplier.City = input.City
	supplier.PostalCode = input.PostalCode
	if input.Country != "" {
		supplier.Country = input.Country
	}
	supplier.Notes = input.Notes
	supplier.IsActive = input.IsActive

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier deletes a supplier by ID
func (s *CatalogService) DeleteSupplier(ctx context.Context, id string) error {
	if _, err := s.GetSupplier(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// ListSuppliers lists all suppliers
func (s *CatalogService) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return s.supplierRepo.List(ctx)
}

// TaxInput represents a tax create or update request
type TaxInput struct {
	Name      string
	Rate      float64
	IsDefault bool
}

// CreateTax creates a tax rate
func (s *CatalogService) CreateTax(ctx context.Context, input *TaxInput) (*entity.Tax, error) {
	if input.Rate < 0 {
		return nil, apperror.NewBadRequestError("Tax rate must not be negative")
	}

	tax := &entity.Tax{
		ID:        identifier.New("tax"),
		Name:      input.Name,
		Rate:      input.Rate,
		IsDefault: input.IsDefault,
	}

	if err := s.taxRepo.Create(ctx, tax); err != nil {
		return nil, err
	}
	return tax, nil
}

// UpdateTax updates a tax rate
func (s *CatalogService) UpdateTax(ctx context.Context, id string, input *TaxInput) (*entity.Tax, error) {
	tax, err := s.taxRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tax == nil {
		return nil, apperror.NewNotFoundError("Tax")
	}
	if input.Rate < 0 {
		return nil, apperror.NewBadRequestError("Tax rate must not be negative")
	}

	tax.Name = input.Name
	tax.Rate = input.Rate
	tax.IsDefault = input.IsDefault

	if err := s.taxRepo.Update(ctx, tax); err != nil {
		return nil, err
	}
	return tax, nil
}

// DeleteTax deletes a tax rate by ID
func (s *CatalogService) DeleteTax(ctx context.Context, id string) error {
	tax, err := s.taxRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tax == nil {
		return apperror.NewNotFoundError("Tax")
	}
	return s.taxRepo.Delete(ctx, id)
}

// ListTaxes lists all tax rates
func (s *CatalogService) ListTaxes(ctx context.Context) ([]entity.Tax, error) {
	return s.taxRepo.List(ctx)
}

// GetSettings returns the settings singleton
func (s *CatalogService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Settings")
	}
	return settings, nil
}

// SettingsInput represents a settings update request
type SettingsInput struct {
	BusinessName     string
	Currency         string
	DefaultMargin    float64
	LowStockAlert    bool
	OutOfStockAlert  bool
	EmailDailyReport bool
}

// UpdateSettings overwrites the settings singleton
func (s *CatalogService) UpdateSettings(ctx context.Context, input *SettingsInput) (*entity.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.BusinessName = input.BusinessName
	settings.Currency = input.Currency
	settings.DefaultMargin = input.DefaultMargin
	settings.LowStockAlert = input.LowStockAlert
	settings.OutOfStockAlert = input.OutOfStockAlert
	settings.EmailDailyReport = input.EmailDailyReport

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
