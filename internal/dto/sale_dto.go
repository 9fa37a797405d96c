package dto

import "github.com/shopspring/decimal"

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	PageQuery
	Customer string `form:"customer" validate:"omitempty,uuid"`
	DateFrom string `form:"dateFrom" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"dateTo"   validate:"omitempty,datetime=2006-01-02"`
	Status   string `form:"status"   validate:"omitempty,oneof=pending paid partial cancelled"`
}

type SaleItemRequest struct {
	ProductID string           `json:"product_id" validate:"required,uuid"`
	Quantity  int              `json:"quantity"   validate:"required,gt=0"`
	// UnitPrice overrides the product sale price when present.
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty,min=0"`
	Discount  *decimal.Decimal `json:"discount"   validate:"omitempty,min=0"`
}

type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id"    validate:"required,uuid"`
	SaleDate      string            `json:"sale_date"      validate:"required,datetime=2006-01-02"`
	Items         []SaleItemRequest `json:"items"          validate:"required,min=1,dive"`
	PaymentMethod *string           `json:"payment_method"`
	Notes         *string           `json:"notes"`
}

type SaleItemResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Product    string          `json:"product,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Discount   decimal.Decimal `json:"discount"`
}

type SaleResponse struct {
	ID             string             `json:"id"`
	CustomerID     string             `json:"customer_id"`
	CustomerName   string             `json:"customer_name,omitempty"`
	SaleDate       string             `json:"sale_date"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	PaymentMethod  *string            `json:"payment_method"`
	PaymentStatus  string             `json:"payment_status"`
	Notes          *string            `json:"notes"`
	Items          []SaleItemResponse `json:"items"`
	CreatedAt      string             `json:"created_at"`
}
