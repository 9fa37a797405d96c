package dto

import "github.com/shopspring/decimal"

// MovementFilter is bound from the query string of GET /v1/stock-movements.
type MovementFilter struct {
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=500"`
	Product  string `form:"product"  validate:"omitempty,uuid"`
	Location string `form:"location" validate:"omitempty,uuid"`
	Type     string `form:"type"     validate:"omitempty,oneof=entrada saida transferencia venda locacao devolucao perda"`
	DateFrom string `form:"dateFrom" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"dateTo"   validate:"omitempty,datetime=2006-01-02"`
}

// CreateMovementRequest records a generic stock movement. Quantity is always
// positive; the movement type decides the sign applied to inventory.
type CreateMovementRequest struct {
	ProductID     string           `json:"product_id"    validate:"required,uuid"`
	LocationID    string           `json:"location_id"   validate:"required,uuid"`
	MovementType  string           `json:"movement_type" validate:"required,oneof=entrada saida transferencia venda locacao devolucao perda"`
	Quantity      int              `json:"quantity"      validate:"required,gt=0"`
	UnitCost      *decimal.Decimal `json:"unit_cost"     validate:"omitempty,min=0"`
	TotalCost     *decimal.Decimal `json:"total_cost"    validate:"omitempty,min=0"`
	ReferenceID   *string          `json:"reference_id"  validate:"omitempty,uuid"`
	ReferenceType *string          `json:"reference_type"`
	Notes         *string          `json:"notes"`
}

type MovementResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	ProductSKU    string           `json:"product_sku,omitempty"`
	ProductName   string           `json:"product_name,omitempty"`
	LocationID    string           `json:"location_id"`
	LocationName  string           `json:"location_name,omitempty"`
	MovementType  string           `json:"movement_type"`
	Quantity      int              `json:"quantity"`
	UnitCost      *decimal.Decimal `json:"unit_cost"`
	TotalCost     *decimal.Decimal `json:"total_cost"`
	ReferenceID   *string          `json:"reference_id"`
	ReferenceType *string          `json:"reference_type"`
	Notes         *string          `json:"notes"`
	CreatedBy     *string          `json:"created_by"`
	CreatedAt     string           `json:"created_at"`
}
