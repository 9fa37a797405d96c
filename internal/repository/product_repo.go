package repository

import (
	"context"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, p *model.Product) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productRepo) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error
	return &p, err
}

func (r *productRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("barcode = ? AND is_active = true", barcode).First(&p).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("category_id = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("product_type = ?", filter.Type)
	}
	if !filter.IncludeInactive {
		q = q.Where("is_active = true")
	}
	if filter.Location != "" {
		q = q.Where("id IN (?)", r.db.Model(&model.InventoryRecord{}).
			Select("product_id").Where("location_id = ?", filter.Location))
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Category").Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *productRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("is_active = true").Count(&n).Error
	return n, err
}

func (r *productRepo) DB() *gorm.DB { return r.db }
