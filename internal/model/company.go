package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is a tenant: owns inventory locations and scopes non-admin users.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	CNPJ      *string   `gorm:"uniqueIndex"`
	Address   *string
	Phone     *string
	Email     *string
	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default pluralization (companys → companies).
func (Company) TableName() string { return "companies" }

// InventoryLocation is a physical stock location belonging to a company.
type InventoryLocation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null"`
	Description *string
	Address     *string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Company *Company `gorm:"foreignKey:CompanyID"`
}
