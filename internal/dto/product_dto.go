package dto

import "github.com/shopspring/decimal"

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	PageQuery
	Search          string `form:"search"`
	Category        string `form:"category"  validate:"omitempty,uuid"`
	Status          string `form:"status"`
	Type            string `form:"type"`
	Location        string `form:"location"  validate:"omitempty,uuid"`
	IncludeInactive bool   `form:"includeInactive"`
}

type CreateProductRequest struct {
	SKU          string           `json:"sku"           validate:"required,min=1"`
	Name         string           `json:"name"          validate:"required,min=2"`
	Description  *string          `json:"description"`
	CategoryID   string           `json:"category_id"   validate:"required,uuid"`
	ProductType  string           `json:"product_type"  validate:"required,oneof=totem tablet insumo peca_acrilico wobbler totem_eliptico adesivo placa material_corte"`
	Status       string           `json:"status"        validate:"required,oneof=novo usado rb ativo manutencao descartado"`
	Barcode      *string          `json:"barcode"`
	SerialNumber *string          `json:"serial_number"`
	Unit         string           `json:"unit"`
	CostPrice    *decimal.Decimal `json:"cost_price"    validate:"omitempty,min=0"`
	SalePrice    *decimal.Decimal `json:"sale_price"    validate:"omitempty,min=0"`
	RentalPrice  *decimal.Decimal `json:"rental_price"  validate:"omitempty,min=0"`
	MinimumStock int              `json:"minimum_stock" validate:"min=0"`
	MaximumStock *int             `json:"maximum_stock" validate:"omitempty,min=0"`
	Weight       *decimal.Decimal `json:"weight"        validate:"omitempty,min=0"`
}

// UpdateProductRequest: nil fields are left untouched.
type UpdateProductRequest struct {
	Name         *string          `json:"name"          validate:"omitempty,min=2"`
	Description  *string          `json:"description"`
	CategoryID   *string          `json:"category_id"   validate:"omitempty,uuid"`
	ProductType  *string          `json:"product_type"  validate:"omitempty,oneof=totem tablet insumo peca_acrilico wobbler totem_eliptico adesivo placa material_corte"`
	Status       *string          `json:"status"        validate:"omitempty,oneof=novo usado rb ativo manutencao descartado"`
	Barcode      *string          `json:"barcode"`
	SerialNumber *string          `json:"serial_number"`
	Unit         *string          `json:"unit"`
	CostPrice    *decimal.Decimal `json:"cost_price"    validate:"omitempty,min=0"`
	SalePrice    *decimal.Decimal `json:"sale_price"    validate:"omitempty,min=0"`
	RentalPrice  *decimal.Decimal `json:"rental_price"  validate:"omitempty,min=0"`
	MinimumStock *int             `json:"minimum_stock" validate:"omitempty,min=0"`
	MaximumStock *int             `json:"maximum_stock" validate:"omitempty,min=0"`
	Weight       *decimal.Decimal `json:"weight"        validate:"omitempty,min=0"`
}

type ProductResponse struct {
	ID           string           `json:"id"`
	SKU          string           `json:"sku"`
	Name         string           `json:"name"`
	Description  *string          `json:"description"`
	CategoryID   string           `json:"category_id"`
	CategoryName string           `json:"category_name,omitempty"`
	ProductType  string           `json:"product_type"`
	Status       string           `json:"status"`
	Barcode      *string          `json:"barcode"`
	SerialNumber *string          `json:"serial_number"`
	Unit         string           `json:"unit"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SalePrice    *decimal.Decimal `json:"sale_price"`
	RentalPrice  *decimal.Decimal `json:"rental_price"`
	MinimumStock int              `json:"minimum_stock"`
	MaximumStock *int             `json:"maximum_stock"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    string           `json:"created_at"`
}

// BulkImportRequest carries rows parsed client-side from a spreadsheet.
type BulkImportRequest struct {
	Products []CreateProductRequest `json:"products" validate:"required,min=1,dive"`
}

// ImportResult reports per-row outcomes of a bulk import.
type ImportResult struct {
	Success       bool     `json:"success"`
	Imported      int      `json:"imported"`
	Errors        int      `json:"errors"`
	Warnings      []string `json:"warnings"`
	ErrorsDetails []string `json:"errors_details"`
}

// LowStockProduct is one row of the low-stock report.
type LowStockProduct struct {
	ProductID    string `json:"product_id"`
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Quantity     int    `json:"quantity"`
	Reserved     int    `json:"reserved_quantity"`
	Available    int    `json:"available_quantity"`
	MinimumStock int    `json:"minimum_stock"`
}

// PriceCheckResponse is served by the public barcode price endpoint.
type PriceCheckResponse struct {
	SKU       string           `json:"sku"`
	Name      string           `json:"name"`
	SalePrice *decimal.Decimal `json:"sale_price"`
	Unit      string           `json:"unit"`
}
