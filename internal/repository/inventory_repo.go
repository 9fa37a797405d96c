package repository

import (
	"context"
	"time"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryRepository owns the inventory table. All quantity mutations of
// multi-step business operations go through the Tx variants so the stock
// service can keep header, items, inventory, and movement writes atomic.
type InventoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryRecord, error)
	List(ctx context.Context, filter dto.InventoryFilter) ([]model.InventoryRecord, int64, error)

	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.InventoryRecord, error)
	FindByProductAndLocationTx(tx *gorm.DB, productID, locationID uuid.UUID) (*model.InventoryRecord, error)
	// FirstByProductTx returns the first inventory record for a product with
	// no location disambiguation — the sale/rental commit lookup of the
	// original system.
	FirstByProductTx(tx *gorm.DB, productID uuid.UUID) (*model.InventoryRecord, error)
	CreateTx(tx *gorm.DB, rec *model.InventoryRecord) error
	// AdjustTx applies signed deltas to quantity / reserved_quantity and
	// stamps last_movement_at.
	AdjustTx(tx *gorm.DB, id uuid.UUID, qtyDelta, reservedDelta int) error
	// SetTx writes absolute quantity / reserved_quantity values.
	SetTx(tx *gorm.DB, id uuid.UUID, quantity, reserved int) error

	// Aggregates for reports.
	SumQuantities(ctx context.Context) (total int64, reserved int64, err error)
	// TotalValue sums quantity * product cost price across all records.
	TotalValue(ctx context.Context) (decimal.Decimal, error)
	LowStock(ctx context.Context) ([]model.InventoryRecord, error)
	CountLowStock(ctx context.Context) (int64, error)

	DB() *gorm.DB
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	err := r.db.WithContext(ctx).Preload("Product").Preload("Location").First(&rec, "id = ?", id).Error
	return &rec, err
}

func (r *inventoryRepo) List(ctx context.Context, filter dto.InventoryFilter) ([]model.InventoryRecord, int64, error) {
	var records []model.InventoryRecord
	var total int64

	q := r.db.WithContext(ctx).Model(&model.InventoryRecord{})
	if filter.Location != "" {
		q = q.Where("location_id = ?", filter.Location)
	}
	if filter.Product != "" {
		q = q.Where("product_id = ?", filter.Product)
	}
	if filter.LowStock {
		q = q.Joins("JOIN products ON products.id = inventory.product_id").
			Where("inventory.quantity - inventory.reserved_quantity < products.minimum_stock")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Product").Preload("Location").
		Order("updated_at DESC").Limit(filter.Limit).Offset(offset).Find(&records).Error
	return records, total, err
}

func (r *inventoryRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	err := tx.First(&rec, "id = ?", id).Error
	return &rec, err
}

func (r *inventoryRepo) FindByProductAndLocationTx(tx *gorm.DB, productID, locationID uuid.UUID) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	err := tx.Where("product_id = ? AND location_id = ?", productID, locationID).First(&rec).Error
	return &rec, err
}

func (r *inventoryRepo) FirstByProductTx(tx *gorm.DB, productID uuid.UUID) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	err := tx.Where("product_id = ?", productID).Order("created_at ASC").First(&rec).Error
	return &rec, err
}

func (r *inventoryRepo) CreateTx(tx *gorm.DB, rec *model.InventoryRecord) error {
	return tx.Create(rec).Error
}

func (r *inventoryRepo) AdjustTx(tx *gorm.DB, id uuid.UUID, qtyDelta, reservedDelta int) error {
	return tx.Model(&model.InventoryRecord{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity":          gorm.Expr("quantity + ?", qtyDelta),
		"reserved_quantity": gorm.Expr("reserved_quantity + ?", reservedDelta),
		"last_movement_at":  time.Now().UTC(),
	}).Error
}

func (r *inventoryRepo) SetTx(tx *gorm.DB, id uuid.UUID, quantity, reserved int) error {
	return tx.Model(&model.InventoryRecord{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity":          quantity,
		"reserved_quantity": reserved,
		"last_movement_at":  time.Now().UTC(),
	}).Error
}

func (r *inventoryRepo) SumQuantities(ctx context.Context) (int64, int64, error) {
	var row struct {
		Total    int64
		Reserved int64
	}
	err := r.db.WithContext(ctx).Model(&model.InventoryRecord{}).
		Select("COALESCE(SUM(quantity),0) AS total, COALESCE(SUM(reserved_quantity),0) AS reserved").
		Scan(&row).Error
	return row.Total, row.Reserved, err
}

func (r *inventoryRepo) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	var row struct{ Value decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.InventoryRecord{}).
		Joins("JOIN products ON products.id = inventory.product_id").
		Select("COALESCE(SUM(inventory.quantity * COALESCE(products.cost_price, 0)), 0) AS value").
		Scan(&row).Error
	return row.Value, err
}

func (r *inventoryRepo) LowStock(ctx context.Context) ([]model.InventoryRecord, error) {
	var records []model.InventoryRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = inventory.product_id").
		Where("products.is_active = true").
		Where("inventory.quantity - inventory.reserved_quantity < products.minimum_stock").
		Preload("Product").Preload("Location").
		Find(&records).Error
	return records, err
}

func (r *inventoryRepo) CountLowStock(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.InventoryRecord{}).
		Joins("JOIN products ON products.id = inventory.product_id").
		Where("products.is_active = true").
		Where("inventory.quantity - inventory.reserved_quantity < products.minimum_stock").
		Count(&n).Error
	return n, err
}

func (r *inventoryRepo) DB() *gorm.DB { return r.db }
