package service

import (
	"context"
	"time"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/repository"
)

type ReportService interface {
	Dashboard(ctx context.Context, query dto.ReportQuery) (*dto.DashboardResponse, error)
	KPIs(ctx context.Context, query dto.ReportQuery) (*dto.KPIResponse, error)
}

type reportService struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
	sales     repository.SaleRepository
	rentals   repository.RentalRepository
}

func NewReportService(
	products repository.ProductRepository,
	inventory repository.InventoryRepository,
	sales repository.SaleRepository,
	rentals repository.RentalRepository,
) ReportService {
	return &reportService{products: products, inventory: inventory, sales: sales, rentals: rentals}
}

func (s *reportService) Dashboard(ctx context.Context, query dto.ReportQuery) (*dto.DashboardResponse, error) {
	totalProducts, err := s.products.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalValue, err := s.inventory.TotalValue(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.inventory.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -query.Period)
	salesTotal, salesCount, err := s.sales.TotalsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	activeRentals, err := s.rentals.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalProducts:       totalProducts,
		TotalInventoryValue: totalValue,
		LowStockCount:       lowStock,
		PeriodSales:         dto.PeriodSales{Total: salesTotal, Count: salesCount},
		ActiveRentals:       activeRentals,
	}, nil
}

func (s *reportService) KPIs(ctx context.Context, query dto.ReportQuery) (*dto.KPIResponse, error) {
	totalProducts, err := s.products.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalStock, totalReserved, err := s.inventory.SumQuantities(ctx)
	if err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -query.Period)
	salesTotal, salesCount, err := s.sales.TotalsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	activeRentals, err := s.rentals.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.KPIResponse{
		Inventory: dto.InventoryKPIs{
			TotalProducts:  totalProducts,
			TotalStock:     totalStock,
			TotalReserved:  totalReserved,
			AvailableStock: totalStock - totalReserved,
		},
		Sales: dto.SalesKPIs{
			TotalSales: salesTotal,
			SalesCount: salesCount,
		},
		Rentals: dto.RentalKPIs{
			ActiveRentals: activeRentals,
		},
	}, nil
}
