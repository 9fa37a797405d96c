package dto

import "github.com/shopspring/decimal"

// InventoryFilter is bound from the query string of GET /v1/inventory.
type InventoryFilter struct {
	PageQuery
	Location string `form:"location"  validate:"omitempty,uuid"`
	Product  string `form:"product"   validate:"omitempty,uuid"`
	LowStock bool   `form:"low_stock"`
}

// StockEntryRequest registers incoming stock for a (product, location) pair,
// creating the inventory record on first entry.
type StockEntryRequest struct {
	ProductID  string           `json:"product_id"  validate:"required,uuid"`
	LocationID string           `json:"location_id" validate:"required,uuid"`
	Quantity   int              `json:"quantity"    validate:"required,gt=0"`
	UnitCost   *decimal.Decimal `json:"unit_cost"   validate:"omitempty,min=0"`
	Notes      *string          `json:"notes"`
}

// UpdateInventoryRequest is the manual adjustment: absolute new values.
type UpdateInventoryRequest struct {
	Quantity         int     `json:"quantity"          validate:"min=0"`
	ReservedQuantity int     `json:"reserved_quantity" validate:"min=0"`
	Notes            *string `json:"notes"`
}

type InventoryResponse struct {
	ID                string  `json:"id"`
	ProductID         string  `json:"product_id"`
	ProductSKU        string  `json:"product_sku,omitempty"`
	ProductName       string  `json:"product_name,omitempty"`
	LocationID        string  `json:"location_id"`
	LocationName      string  `json:"location_name,omitempty"`
	Quantity          int     `json:"quantity"`
	ReservedQuantity  int     `json:"reserved_quantity"`
	AvailableQuantity int     `json:"available_quantity"`
	LastMovementAt    *string `json:"last_movement_at"`
}
