package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movement types. Entrada is the only inbound type; every other type
// subtracts from on-hand stock when applied through the stock service.
const (
	MovementEntrada       = "entrada"
	MovementSaida         = "saida"
	MovementTransferencia = "transferencia"
	MovementVenda         = "venda"
	MovementLocacao       = "locacao"
	MovementDevolucao     = "devolucao"
	MovementPerda         = "perda"
)

// ValidMovementType reports whether t is one of the seven known types.
func ValidMovementType(t string) bool {
	switch t {
	case MovementEntrada, MovementSaida, MovementTransferencia,
		MovementVenda, MovementLocacao, MovementDevolucao, MovementPerda:
		return true
	}
	return false
}

// OutboundMovement reports whether t requires an on-hand stock check
// before being applied (saida/venda/perda).
func OutboundMovement(t string) bool {
	return t == MovementSaida || t == MovementVenda || t == MovementPerda
}

// StockMovement is the append-only audit record of every quantity change.
// Rows are never updated or deleted once inserted.
type StockMovement struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LocationID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MovementType  string    `gorm:"type:varchar(20);not null;index"`
	Quantity      int       `gorm:"not null"`
	UnitCost      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	TotalCost     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ReferenceID   *uuid.UUID       `gorm:"type:uuid"` // sale_id or rental_id when applicable
	ReferenceType *string          `gorm:"type:varchar(20)"`
	Notes         *string
	CreatedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time

	Product  *Product           `gorm:"foreignKey:ProductID"`
	Location *InventoryLocation `gorm:"foreignKey:LocationID"`
}
