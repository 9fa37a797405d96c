package dto

import "github.com/shopspring/decimal"

// RentalFilter is bound from the query string of GET /v1/rentals.
type RentalFilter struct {
	PageQuery
	Customer string `form:"customer" validate:"omitempty,uuid"`
	DateFrom string `form:"dateFrom" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"dateTo"   validate:"omitempty,datetime=2006-01-02"`
	Status   string `form:"status"   validate:"omitempty,oneof=active returned overdue cancelled"`
}

type RentalItemRequest struct {
	ProductID string           `json:"product_id" validate:"required,uuid"`
	Quantity  int              `json:"quantity"   validate:"required,gt=0"`
	// UnitPrice overrides the product rental price when present.
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty,min=0"`
}

type CreateRentalRequest struct {
	CustomerID         string              `json:"customer_id"          validate:"required,uuid"`
	RentalDate         string              `json:"rental_date"          validate:"required,datetime=2006-01-02"`
	ExpectedReturnDate *string             `json:"expected_return_date" validate:"omitempty,datetime=2006-01-02"`
	Items              []RentalItemRequest `json:"items"                validate:"required,min=1,dive"`
	DepositAmount      *decimal.Decimal    `json:"deposit_amount"       validate:"omitempty,min=0"`
	Notes              *string             `json:"notes"`
}

// ReturnItemRequest identifies one rental item and how many units came back.
type ReturnItemRequest struct {
	ID       string `json:"id"       validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type ReturnRentalRequest struct {
	Items      []ReturnItemRequest `json:"items"       validate:"required,min=1,dive"`
	ReturnDate *string             `json:"return_date" validate:"omitempty,datetime=2006-01-02"`
}

type RentalItemResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	Product          string          `json:"product,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	ReturnedQuantity int             `json:"returned_quantity"`
}

type RentalResponse struct {
	ID                 string               `json:"id"`
	CustomerID         string               `json:"customer_id"`
	CustomerName       string               `json:"customer_name,omitempty"`
	RentalDate         string               `json:"rental_date"`
	ReturnDate         *string              `json:"return_date"`
	ExpectedReturnDate *string              `json:"expected_return_date"`
	TotalAmount        decimal.Decimal      `json:"total_amount"`
	DepositAmount      decimal.Decimal      `json:"deposit_amount"`
	Status             string               `json:"status"`
	Notes              *string              `json:"notes"`
	Items              []RentalItemResponse `json:"items"`
	CreatedAt          string               `json:"created_at"`
}
