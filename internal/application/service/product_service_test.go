package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstock/openstock-api/internal/domain/entity"
)

type stubVariantRepo struct {
	variants map[string]*entity.ProductVariant
}

func newStubVariantRepo() *stubVariantRepo {
	return &stubVariantRepo{variants: map[string]*entity.ProductVariant{}}
}

func (r *stubVariantRepo) Create(_ context.Context, variant *entity.ProductVariant) error {
	r.variants[variant.ID] = variant
	return nil
}

func (r *stubVariantRepo) GetByID(_ context.Context, id string) (*entity.ProductVariant, error) {
	return r.variants[id], nil
}

func (r *stubVariantRepo) Update(_ context.Context, variant *entity.ProductVariant) error {
	r.variants[variant.ID] = variant
	return nil
}

func (r *stubVariantRepo) Delete(_ context.Context, id string) error {
	delete(r.variants, id)
	return nil
}

func (r *stubVariantRepo) ListByProduct(_ context.Context, productID string) ([]entity.ProductVariant, error) {
	var out []entity.ProductVariant
	for _, v := range r.variants {
		if v.ProductID == productID {
			out = append(out, *v)
		}
	}
	return out, nil
}

type stubPriceRepo struct {
	supplierPrices  map[string]*entity.SupplierPrice
	supplierHistory []*entity.SupplierPriceHistory
	sellingHistory  []*entity.SellingPriceHistory
}

func newStubPriceRepo() *stubPriceRepo {
	return &stubPriceRepo{supplierPrices: map[string]*entity.SupplierPrice{}}
}

func (r *stubPriceRepo) CreateSupplierPrice(_ context.Context, price *entity.SupplierPrice, history *entity.SupplierPriceHistory) error {
	r.supplierPrices[price.ID] = price
	r.supplierHistory = append(r.supplierHistory, history)
	return nil
}

func (r *stubPriceRepo) UpdateSupplierPrice(_ context.Context, price *entity.SupplierPrice, history *entity.SupplierPriceHistory) error {
	r.supplierPrices[price.ID] = price
	if history != nil {
		r.supplierHistory = append(r.supplierHistory, history)
	}
	return nil
}

func (r *stubPriceRepo) GetSupplierPrice(_ context.Context, id string) (*entity.SupplierPrice, error) {
	return r.supplierPrices[id], nil
}

func (r *stubPriceRepo) ListSupplierPrices(_ context.Context, productID string) ([]entity.SupplierPrice, error) {
	var out []entity.SupplierPrice
	for _, p := range r.supplierPrices {
		if p.ProductID == productID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPriceRepo) DeleteSupplierPrice(_ context.Context, id string) error {
	delete(r.supplierPrices, id)
	return nil
}

func (r *stubPriceRepo) AddSellingPrice(_ context.Context, history *entity.SellingPriceHistory) error {
	r.sellingHistory = append(r.sellingHistory, history)
	return nil
}

func (r *stubPriceRepo) ListSellingPrices(_ context.Context, productID string) ([]entity.SellingPriceHistory, error) {
	var out []entity.SellingPriceHistory
	for _, h := range r.sellingHistory {
		if h.ProductID == productID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func newProductFixture() (*ProductService, *stubProductRepo, *stubPriceRepo) {
	products := newStubProductRepo()
	prices := newStubPriceRepo()
	return NewProductService(products, newStubVariantRepo(), prices), products, prices
}

func TestCreateProductDerivesSellingPrice(t *testing.T) {
	svc, _, prices := newProductFixture()

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:          "Widget",
		CostPrice:     100,
		MarginPercent: 30,
	})
	require.NoError(t, err)

	assert.InDelta(t, 130.0, product.SellingPrice, 0.001)
	assert.Equal(t, "unit", product.Unit)
	assert.True(t, product.IsActive)
	require.Len(t, prices.sellingHistory, 1)
	assert.InDelta(t, 130.0, prices.sellingHistory[0].Price, 0.001)
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	svc, _, _ := newProductFixture()
	sku := "WID-001"

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "Widget",
		SKU:  &sku,
	})
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "Widget clone",
		SKU:  &sku,
	})
	require.Error(t, err)
}

func TestUpdateProductRecordsPriceHistory(t *testing.T) {
	svc, _, prices := newProductFixture()

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:         "Widget",
		SellingPrice: 50,
	})
	require.NoError(t, err)
	require.Len(t, prices.sellingHistory, 1)

	_, err = svc.UpdateProduct(context.Background(), product.ID, &UpdateProductInput{
		Name:         "Widget",
		SellingPrice: 60,
		IsActive:     true,
	})
	require.NoError(t, err)
	require.Len(t, prices.sellingHistory, 2)
	assert.InDelta(t, 60.0, prices.sellingHistory[1].Price, 0.001)

	// Same price again does not append history.
	_, err = svc.UpdateProduct(context.Background(), product.ID, &UpdateProductInput{
		Name:         "Widget",
		SellingPrice: 60,
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Len(t, prices.sellingHistory, 2)
}

func TestUpdateSupplierPriceAppendsHistoryOnChange(t *testing.T) {
	svc, products, prices := newProductFixture()
	_ = products.Create(context.Background(), &entity.Product{ID: "prod_1", Name: "Widget", IsActive: true})

	price, err := svc.CreateSupplierPrice(context.Background(), "prod_1", &SupplierPriceInput{
		SupplierID: "sup_1",
		Price:      80,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, price.MinQuantity)
	require.Len(t, prices.supplierHistory, 1)

	_, err = svc.UpdateSupplierPrice(context.Background(), price.ID, &SupplierPriceInput{
		SupplierID: "sup_1",
		Price:      85,
	})
	require.NoError(t, err)
	require.Len(t, prices.supplierHistory, 2)
	assert.InDelta(t, 85.0, prices.supplierHistory[1].Price, 0.001)

	_, err = svc.UpdateSupplierPrice(context.Background(), price.ID, &SupplierPriceInput{
		SupplierID: "sup_1",
		Price:      85,
	})
	require.NoError(t, err)
	assert.Len(t, prices.supplierHistory, 2)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc, _, _ := newProductFixture()

	err := svc.DeleteProduct(context.Background(), "prod_missing")
	require.Error(t, err)
}
