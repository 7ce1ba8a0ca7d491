package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/domain/repository"
)

type stubProductRepo struct {
	products map[string]*entity.Product
}

func newStubProductRepo(products ...*entity.Product) *stubProductRepo {
	repo := &stubProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *stubProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *stubProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU != nil && *p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

func (r *stubProductRepo) CountActive(_ context.Context) (int64, error)   { return 0, nil }
func (r *stubProductRepo) CountLowStock(_ context.Context) (int64, error) { return 0, nil }
func (r *stubProductRepo) ListLowStock(_ context.Context, _ int) ([]entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) TotalStockValue(_ context.Context) (float64, error) { return 0, nil }

type stubMovementRepo struct {
	products  *stubProductRepo
	movements []*entity.StockMovement
}

func (r *stubMovementRepo) Apply(_ context.Context, movement *entity.StockMovement) error {
	r.movements = append(r.movements, movement)
	if product, ok := r.products.products[movement.ProductID]; ok {
		product.StockQuantity = movement.StockAfter
	}
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, _ *repository.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	out := make([]entity.StockMovement, 0, len(r.movements))
	for _, m := range r.movements {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMovementRepo) Recent(_ context.Context, _ int) ([]entity.StockMovement, error) {
	return nil, nil
}

func (r *stubMovementRepo) OutboundTotals(_ context.Context) (*repository.OutboundTotals, error) {
	return &repository.OutboundTotals{}, nil
}

func newStockFixture(stock int) (*StockService, *stubProductRepo, *stubMovementRepo) {
	products := newStubProductRepo(&entity.Product{
		ID:            "prod_1",
		Name:          "Widget",
		StockQuantity: stock,
		IsActive:      true,
	})
	movements := &stubMovementRepo{products: products}
	return NewStockService(products, movements), products, movements
}

func TestCreateMovementIn(t *testing.T) {
	svc, products, _ := newStockFixture(10)

	movement, err := svc.CreateMovement(context.Background(), &CreateMovementInput{
		ProductID: "prod_1",
		Type:      enum.MovementIn,
		Quantity:  5,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, movement.StockBefore)
	assert.Equal(t, 15, movement.StockAfter)
	assert.Equal(t, 5, movement.Quantity)
	assert.Equal(t, 15, products.products["prod_1"].StockQuantity)
}

func TestCreateMovementOut(t *testing.T) {
	svc, products, _ := newStockFixture(10)

	movement, err := svc.CreateMovement(context.Background(), &CreateMovementInput{
		ProductID: "prod_1",
		Type:      enum.MovementOut,
		Quantity:  4,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, movement.StockAfter)
	assert.Equal(t, 6, products.products["prod_1"].StockQuantity)
}

func TestCreateMovementAdjustmentRecordsDelta(t *testing.T) {
	svc, products, _ := newStockFixture(10)

	movement, err := svc.CreateMovement(context.Background(), &CreateMovementInput{
		ProductID: "prod_1",
		Type:      enum.MovementAdjustment,
		Quantity:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, movement.StockAfter)
	assert.Equal(t, -7, movement.Quantity)
	assert.Equal(t, 3, products.products["prod_1"].StockQuantity)
}

func TestCreateMovementRejectsNegativeStock(t *testing.T) {
	svc, products, _ := newStockFixture(3)

	_, err := svc.CreateMovement(context.Background(), &CreateMovementInput{
		ProductID: "prod_1",
		Type:      enum.MovementOut,
		Quantity:  5,
	})
	require.Error(t, err)
	assert.Equal(t, 3, products.products["prod_1"].StockQuantity)
}

func TestCreateMovementAllowNegative(t *testing.T) {
	svc, products, _ := newStockFixture(3)

	movement, err := svc.CreateMovement(context.Background(), &CreateMovementInput{
		ProductID:     "prod_1",
		Type:          enum.MovementOut,
		Quantity:      5,
		AllowNegative: true,
	})
	require.NoError(t, err)

	assert.Equal(t, -2, movement.StockAfter)
	assert.Equal(t, -2, products.products["prod_1"].StockQuantity)
}

func TestCreateMovementRejectsNonPositiveQuantity(t *testing.T) {
	svc, _, _ := newStockFixture(10)

	_, err := svc.CreateMovement(context.Background(), &CreateMovementInput{
		ProductID: "prod_1",
		Type:      enum.MovementIn,
		Quantity:  0,
	})
	require.Error(t, err)
}

func TestCreateMovementUnknownProduct(t *testing.T) {
	svc, _, _ := newStockFixture(10)

	_, err := svc.CreateMovement(context.Background(), &CreateMovementInput{
		ProductID: "prod_missing",
		Type:      enum.MovementIn,
		Quantity:  1,
	})
	require.Error(t, err)
}

// Movements are not idempotent: submitting the same request twice moves
// stock twice.
func TestCreateMovementAppliedTwice(t *testing.T) {
	svc, products, movements := newStockFixture(10)

	input := &CreateMovementInput{
		ProductID: "prod_1",
		Type:      enum.MovementIn,
		Quantity:  5,
	}
	_, err := svc.CreateMovement(context.Background(), input)
	require.NoError(t, err)
	_, err = svc.CreateMovement(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 20, products.products["prod_1"].StockQuantity)
	assert.Len(t, movements.movements, 2)
}

func TestComputeMovement(t *testing.T) {
	tests := []struct {
		name         string
		movementType enum.MovementType
		stockBefore  int
		quantity     int
		wantAfter    int
		wantRecorded int
	}{
		{"in adds", enum.MovementIn, 10, 5, 15, 5},
		{"out subtracts", enum.MovementOut, 10, 5, 5, 5},
		{"adjustment up", enum.MovementAdjustment, 10, 25, 25, 15},
		{"adjustment down", enum.MovementAdjustment, 10, 4, 4, -6},
		{"adjustment to zero", enum.MovementAdjustment, 10, 0, 0, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after, recorded := computeMovement(tt.movementType, tt.stockBefore, tt.quantity)
			assert.Equal(t, tt.wantAfter, after)
			assert.Equal(t, tt.wantRecorded, recorded)
		})
	}
}
