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

type SaleRepository interface {
	// CreateTx inserts the sale header and its items in one statement batch.
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error)

	// Aggregates for reports.
	TotalsSince(ctx context.Context, since time.Time) (decimal.Decimal, int64, error)

	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Sale{})

	if filter.Customer != "" {
		q = q.Where("customer_id = ?", filter.Customer)
	}
	if filter.DateFrom != "" {
		q = q.Where("sale_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("sale_date <= ?", filter.DateTo)
	}
	if filter.Status != "" {
		q = q.Where("payment_status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var sales []model.Sale
	err := q.Preload("Customer").Preload("Items").Preload("Items.Product").
		Order("sale_date DESC").Offset(offset).Limit(filter.Limit).Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) TotalsSince(ctx context.Context, since time.Time) (decimal.Decimal, int64, error) {
	var row struct {
		Total decimal.Decimal
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COALESCE(SUM(total_amount),0) AS total, COUNT(*) AS count").
		Where("sale_date >= ?", since.Format("2006-01-02")).
		Scan(&row).Error
	return row.Total, row.Count, err
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
