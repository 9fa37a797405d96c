package dto

import "github.com/shopspring/decimal"

// ReportQuery selects the reporting window in days (default 30).
type ReportQuery struct {
	Period int `form:"period,default=30" validate:"min=1,max=365"`
}

// DashboardResponse is the landing-page summary.
type DashboardResponse struct {
	TotalProducts       int64           `json:"totalProducts"`
	TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`
	LowStockCount       int64           `json:"lowStockCount"`
	PeriodSales         PeriodSales     `json:"periodSales"`
	ActiveRentals       int64           `json:"activeRentals"`
}

type PeriodSales struct {
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// KPIResponse aggregates stock, sales, and rental indicators.
type KPIResponse struct {
	Inventory InventoryKPIs `json:"inventory"`
	Sales     SalesKPIs     `json:"sales"`
	Rentals   RentalKPIs    `json:"rentals"`
}

type InventoryKPIs struct {
	TotalProducts  int64 `json:"totalProducts"`
	TotalStock     int64 `json:"totalStock"`
	TotalReserved  int64 `json:"totalReserved"`
	AvailableStock int64 `json:"availableStock"`
}

type SalesKPIs struct {
	TotalSales decimal.Decimal `json:"totalSales"`
	SalesCount int64           `json:"salesCount"`
}

type RentalKPIs struct {
	ActiveRentals int64 `json:"activeRentals"`
}
