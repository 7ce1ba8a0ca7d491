package service

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/repository"
)

// DashboardService aggregates inventory-wide statistics at read time
type DashboardService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	supplierRepo repository.SupplierRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	supplierRepo repository.SupplierRepository,
) *DashboardService {
	return &DashboardService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		supplierRepo: supplierRepo,
	}
}

// DashboardStats is the inventory overview. Everything is recomputed per
// request; nothing is cached or stored.
type DashboardStats struct {
	ActiveProducts  int64                      `json:"activeProducts"`
	ActiveSuppliers int64                      `json:"activeSuppliers"`
	LowStockCount   int64                      `json:"lowStockCount"`
	LowStockItems   []entity.Product           `json:"lowStockItems"`
	StockValue      float64                    `json:"stockValue"`
	Outbound        *repository.OutboundTotals `json:"outbound"`
	RecentMovements []entity.StockMovement     `json:"recentMovements"`
}

// Stats builds the dashboard snapshot: counts, the five most urgent low
// stock items, the valuation of stock on hand, outbound totals and the five
// latest movements.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	activeProducts, err := s.productRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	activeSuppliers, err := s.supplierRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	lowStockCount, err := s.productRepo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}

	lowStockItems, err := s.productRepo.ListLowStock(ctx, 5)
	if err != nil {
		return nil, err
	}

	stockValue, err := s.productRepo.TotalStockValue(ctx)
	if err != nil {
		return nil, err
	}

	outbound, err := s.movementRepo.OutboundTotals(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.movementRepo.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ActiveProducts:  activeProducts,
		ActiveSuppliers: activeSuppliers,
		LowStockCount:   lowStockCount,
		LowStockItems:   lowStockItems,
		StockValue:      stockValue,
		Outbound:        outbound,
		RecentMovements: recent,
	}, nil
}
