package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product types mirror the catalog of the display/rental business.
const (
	ProductTypeTotem         = "totem"
	ProductTypeTablet        = "tablet"
	ProductTypeInsumo        = "insumo"
	ProductTypePecaAcrilico  = "peca_acrilico"
	ProductTypeWobbler       = "wobbler"
	ProductTypeTotemEliptico = "totem_eliptico"
	ProductTypeAdesivo       = "adesivo"
	ProductTypePlaca         = "placa"
	ProductTypeMaterialCorte = "material_corte"
)

// Product statuses: condition/lifecycle of a catalog item.
const (
	ProductStatusNovo       = "novo"
	ProductStatusUsado      = "usado"
	ProductStatusRB         = "rb"
	ProductStatusAtivo      = "ativo"
	ProductStatusManutencao = "manutencao"
	ProductStatusDescartado = "descartado"
)

// Product is a catalog item. SKU is the business key; QRCode holds a
// data-URL rendering of the SKU generated at creation time.
type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU          string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"index;not null"`
	Description  *string
	CategoryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductType  string    `gorm:"type:varchar(20);not null"`
	Status       string    `gorm:"type:varchar(20);not null"`
	Barcode      *string   `gorm:"index"`
	QRCode       *string
	SerialNumber *string
	Unit         string           `gorm:"not null;default:'unidade'"`
	CostPrice    *decimal.Decimal `gorm:"type:decimal(10,2)"`
	SalePrice    *decimal.Decimal `gorm:"type:decimal(10,2)"`
	RentalPrice  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	MinimumStock int              `gorm:"not null;default:0"`
	MaximumStock *int
	Weight       *decimal.Decimal `gorm:"type:decimal(10,3)"`
	IsActive     bool             `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

// Category groups products of a single product type.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
	ProductType string `gorm:"type:varchar(20);not null"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default pluralization (categorys → categories).
func (Category) TableName() string { return "categories" }
