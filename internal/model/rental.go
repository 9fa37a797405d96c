package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rental statuses. A rental becomes "returned" exactly when every item has
// ReturnedQuantity == Quantity; the maintenance cron flips active rentals
// past their expected return date to "overdue".
const (
	RentalActive    = "active"
	RentalReturned  = "returned"
	RentalOverdue   = "overdue"
	RentalCancelled = "cancelled"
)

type Rental struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	RentalDate         time.Time  `gorm:"type:date;not null;index"`
	ReturnDate         *time.Time `gorm:"type:date"`
	ExpectedReturnDate *time.Time `gorm:"type:date;index"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DepositAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status             string          `gorm:"type:varchar(20);not null;default:'active';index"`
	Notes              *string
	CreatedBy          *uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Customer *Customer    `gorm:"foreignKey:CustomerID"`
	Items    []RentalItem `gorm:"foreignKey:RentalID"`
}

// RentalItem tracks partial returns via ReturnedQuantity, which never
// exceeds Quantity.
type RentalItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RentalID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity         int             `gorm:"not null"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ReturnedQuantity int             `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// FullyReturned reports whether every unit of this line came back.
func (i *RentalItem) FullyReturned() bool { return i.ReturnedQuantity == i.Quantity }
