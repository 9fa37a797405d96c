package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryRecord is the stock count of one product at one location.
// Quantity is on-hand stock; ReservedQuantity is the share committed to
// active rentals. Available() is the sellable/rentable amount.
type InventoryRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_product_location"`
	LocationID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_product_location"`
	Quantity         int       `gorm:"not null;default:0"`
	ReservedQuantity int       `gorm:"not null;default:0"`
	LastMovementAt   *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Product  *Product           `gorm:"foreignKey:ProductID"`
	Location *InventoryLocation `gorm:"foreignKey:LocationID"`
}

// TableName keeps the table singular as in the original schema.
func (InventoryRecord) TableName() string { return "inventory" }

// Available returns on-hand minus reserved. Can legitimately be negative
// because sale commits never check stock (see stock service).
func (r *InventoryRecord) Available() int { return r.Quantity - r.ReservedQuantity }
