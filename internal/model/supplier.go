package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier categories.
const (
	SupplierFabricante   = "fabricante"
	SupplierDistribuidor = "distribuidor"
	SupplierServico      = "servico"
	SupplierOutro        = "outro"
)

type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	CNPJ          *string   `gorm:"uniqueIndex"`
	Category      string    `gorm:"type:varchar(20);not null"`
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
	PaymentTerms  *string
	// DeliveryTime is the average lead time in days.
	DeliveryTime *int
	Rating       *int `gorm:"check:rating >= 1 AND rating <= 5"`
	IsActive     bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
