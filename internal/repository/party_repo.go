package repository

// Customers, suppliers, categories, companies, and locations share the same
// thin CRUD surface; they live together to avoid five near-identical files.

import (
	"context"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context, filter dto.CustomerFilter) ([]model.Customer, int64, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *customerRepo) List(ctx context.Context, filter dto.CustomerFilter) ([]model.Customer, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Customer{}).Where("is_active = true")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR cpf_cnpj ILIKE ?", pattern, pattern)
	}
	if filter.Type != "" {
		q = q.Where("customer_type = ?", filter.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var customers []model.Customer
	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Offset(offset).Limit(filter.Limit).Find(&customers).Error
	return customers, total, err
}

type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	List(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, int64, error)
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *supplierRepo) List(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Supplier{}).Where("is_active = true")
	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var suppliers []model.Supplier
	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Offset(offset).Limit(filter.Limit).Find(&suppliers).Error
	return suppliers, total, err
}

type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	List(ctx context.Context, page, limit int) ([]model.Category, int64, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) List(ctx context.Context, page, limit int) ([]model.Category, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Category{}).Where("is_active = true")
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var categories []model.Category
	err := q.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&categories).Error
	return categories, total, err
}

type CompanyRepository interface {
	Create(ctx context.Context, c *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	List(ctx context.Context, page, limit int) ([]model.Company, int64, error)

	CreateLocation(ctx context.Context, l *model.InventoryLocation) error
	FindLocationByID(ctx context.Context, id uuid.UUID) (*model.InventoryLocation, error)
	ListLocations(ctx context.Context, companyID *uuid.UUID) ([]model.InventoryLocation, error)
}

type companyRepo struct{ db *gorm.DB }

func NewCompanyRepository(db *gorm.DB) CompanyRepository { return &companyRepo{db: db} }

func (r *companyRepo) Create(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *companyRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var c model.Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *companyRepo) List(ctx context.Context, page, limit int) ([]model.Company, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Company{}).Where("is_active = true")
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var companies []model.Company
	err := q.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&companies).Error
	return companies, total, err
}

func (r *companyRepo) CreateLocation(ctx context.Context, l *model.InventoryLocation) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *companyRepo) FindLocationByID(ctx context.Context, id uuid.UUID) (*model.InventoryLocation, error) {
	var l model.InventoryLocation
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *companyRepo) ListLocations(ctx context.Context, companyID *uuid.UUID) ([]model.InventoryLocation, error) {
	q := r.db.WithContext(ctx).Where("is_active = true")
	if companyID != nil {
		q = q.Where("company_id = ?", *companyID)
	}
	var locations []model.InventoryLocation
	err := q.Order("name ASC").Find(&locations).Error
	return locations, err
}
