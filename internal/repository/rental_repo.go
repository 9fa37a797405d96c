package repository

import (
	"context"
	"time"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RentalRepository interface {
	CreateTx(tx *gorm.DB, rental *model.Rental) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	List(ctx context.Context, filter dto.RentalFilter) ([]model.Rental, int64, error)

	FindItemTx(tx *gorm.DB, itemID, rentalID uuid.UUID) (*model.RentalItem, error)
	ItemsTx(tx *gorm.DB, rentalID uuid.UUID) ([]model.RentalItem, error)
	AddReturnedTx(tx *gorm.DB, itemID uuid.UUID, quantity int) error
	// CloseTx flips the rental to returned and stamps return_date.
	CloseTx(tx *gorm.DB, rentalID uuid.UUID, returnDate time.Time) error

	CountActive(ctx context.Context) (int64, error)
	// OverdueCandidates lists active rentals whose expected return date
	// passed, with the customer preloaded for notification.
	OverdueCandidates(ctx context.Context, asOf time.Time) ([]model.Rental, error)
	// MarkOverdue flips active rentals whose expected return date passed.
	// Returns the number of rentals updated.
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)

	DB() *gorm.DB
}

type rentalRepo struct{ db *gorm.DB }

func NewRentalRepository(db *gorm.DB) RentalRepository { return &rentalRepo{db: db} }

func (r *rentalRepo) CreateTx(tx *gorm.DB, rental *model.Rental) error {
	return tx.Create(rental).Error
}

func (r *rentalRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	var rental model.Rental
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		First(&rental, "id = ?", id).Error
	return &rental, err
}

func (r *rentalRepo) List(ctx context.Context, filter dto.RentalFilter) ([]model.Rental, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Rental{})

	if filter.Customer != "" {
		q = q.Where("customer_id = ?", filter.Customer)
	}
	if filter.DateFrom != "" {
		q = q.Where("rental_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("rental_date <= ?", filter.DateTo)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var rentals []model.Rental
	err := q.Preload("Customer").Preload("Items").Preload("Items.Product").
		Order("rental_date DESC").Offset(offset).Limit(filter.Limit).Find(&rentals).Error
	return rentals, total, err
}

func (r *rentalRepo) FindItemTx(tx *gorm.DB, itemID, rentalID uuid.UUID) (*model.RentalItem, error) {
	var item model.RentalItem
	err := tx.Where("id = ? AND rental_id = ?", itemID, rentalID).First(&item).Error
	return &item, err
}

func (r *rentalRepo) ItemsTx(tx *gorm.DB, rentalID uuid.UUID) ([]model.RentalItem, error) {
	var items []model.RentalItem
	err := tx.Where("rental_id = ?", rentalID).Find(&items).Error
	return items, err
}

func (r *rentalRepo) AddReturnedTx(tx *gorm.DB, itemID uuid.UUID, quantity int) error {
	return tx.Model(&model.RentalItem{}).Where("id = ?", itemID).
		Update("returned_quantity", gorm.Expr("returned_quantity + ?", quantity)).Error
}

func (r *rentalRepo) CloseTx(tx *gorm.DB, rentalID uuid.UUID, returnDate time.Time) error {
	return tx.Model(&model.Rental{}).Where("id = ?", rentalID).Updates(map[string]interface{}{
		"status":      model.RentalReturned,
		"return_date": returnDate,
	}).Error
}

func (r *rentalRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Rental{}).
		Where("status = ?", model.RentalActive).Count(&n).Error
	return n, err
}

func (r *rentalRepo) OverdueCandidates(ctx context.Context, asOf time.Time) ([]model.Rental, error) {
	var rentals []model.Rental
	err := r.db.WithContext(ctx).
		Where("status = ? AND expected_return_date IS NOT NULL AND expected_return_date < ?",
			model.RentalActive, asOf.Format("2006-01-02")).
		Preload("Customer").
		Find(&rentals).Error
	return rentals, err
}

func (r *rentalRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Rental{}).
		Where("status = ? AND expected_return_date IS NOT NULL AND expected_return_date < ?",
			model.RentalActive, asOf.Format("2006-01-02")).
		Update("status", model.RentalOverdue)
	return res.RowsAffected, res.Error
}

func (r *rentalRepo) DB() *gorm.DB { return r.db }
