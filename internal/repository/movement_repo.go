package repository

import (
	"context"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"

	"gorm.io/gorm"
)

// MovementRepository appends to and reads the stock_movements audit table.
// Movements are immutable: there is deliberately no update or delete.
type MovementRepository interface {
	CreateTx(tx *gorm.DB, m *model.StockMovement) error
	List(ctx context.Context, filter dto.MovementFilter) ([]model.StockMovement, int64, error)
}

type movementRepo struct{ db *gorm.DB }

func NewMovementRepository(db *gorm.DB) MovementRepository { return &movementRepo{db: db} }

func (r *movementRepo) CreateTx(tx *gorm.DB, m *model.StockMovement) error {
	return tx.Create(m).Error
}

func (r *movementRepo) List(ctx context.Context, filter dto.MovementFilter) ([]model.StockMovement, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.StockMovement{})

	if filter.Product != "" {
		q = q.Where("product_id = ?", filter.Product)
	}
	if filter.Location != "" {
		q = q.Where("location_id = ?", filter.Location)
	}
	if filter.Type != "" {
		q = q.Where("movement_type = ?", filter.Type)
	}
	if filter.DateFrom != "" {
		q = q.Where("created_at >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("created_at <= ?", filter.DateTo+" 23:59:59")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var movements []model.StockMovement
	err := q.Preload("Product").Preload("Location").
		Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&movements).Error
	return movements, total, err
}
