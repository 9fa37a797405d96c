package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment statuses of a sale.
const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentPartial   = "partial"
	PaymentCancelled = "cancelled"
)

// Sale is never mutated after creation.
type Sale struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	SaleDate       time.Time       `gorm:"type:date;not null;index"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentMethod  *string
	PaymentStatus  string `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes          *string
	CreatedBy      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Customer *Customer  `gorm:"foreignKey:CustomerID"`
	Items    []SaleItem `gorm:"foreignKey:SaleID"`
}

type SaleItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt  time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
